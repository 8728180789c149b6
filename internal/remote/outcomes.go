package remote

import "net/http"

// Operation names one logical server call.
type Operation string

const (
	OpCreateUser      Operation = "create user"
	OpLogin           Operation = "login"
	OpDeleteUser      Operation = "delete user"
	OpUploadTheme     Operation = "upload theme"
	OpDownloadTheme   Operation = "download theme"
	OpPublishMetadata Operation = "publish metadata"
	OpUnpublishTheme  Operation = "unpublish theme"
	OpGetMetadata     Operation = "get metadata"
)

// Operations lists every operation with an outcome table.
var Operations = []Operation{
	OpCreateUser,
	OpLogin,
	OpDeleteUser,
	OpUploadTheme,
	OpDownloadTheme,
	OpPublishMetadata,
	OpUnpublishTheme,
	OpGetMetadata,
}

// Outcome is the meaning of one documented failure status.
type Outcome struct {
	Kind    Kind
	Message string
}

// outcomes maps each operation's documented failure codes. Codes missing
// from a table are reported as KindServer.
var outcomes = map[Operation]map[int]Outcome{
	OpCreateUser: {
		http.StatusForbidden:             {KindNameTaken, "User already created. Pick a different name!"},
		http.StatusRequestEntityTooLarge: {KindTooLong, "Either your username or password was too long. The limit is 20 characters for username, and 100 for password."},
	},
	OpLogin: {
		http.StatusForbidden: {KindBadCredentials, "Wrong login info. Try again!"},
	},
	OpDeleteUser: {
		http.StatusForbidden:    {KindForbidden, "You are trying to delete a user you are not."},
		http.StatusUnauthorized: {KindUnauthorized, "You're trying to delete a user without providing adequate authentication credentials."},
		http.StatusNotFound:     {KindNotFound, "You're trying to delete a user that doesn't exist."},
	},
	OpUploadTheme: {
		http.StatusForbidden: {KindForbidden, "That theme already exists, and you are not its owner."},
	},
	OpDownloadTheme: {
		http.StatusNotFound: {KindNotFound, "Theme has not been uploaded."},
	},
	OpPublishMetadata: {
		http.StatusNotFound:              {KindNotFound, "That theme hasn't been published."},
		http.StatusForbidden:             {KindForbidden, "Can't edit the metadata of a theme that isn't yours."},
		http.StatusPreconditionFailed:    {KindInvalidMetadata, "That isn't a valid metadata type."},
		http.StatusRequestEntityTooLarge: {KindTooLong, "Your description or screenshot url was more than 200 characters long."},
	},
	OpUnpublishTheme: {
		http.StatusNotFound:     {KindNotFound, "Can't unpublish a nonexistent theme."},
		http.StatusForbidden:    {KindForbidden, "Can't unpublish a theme that isn't yours."},
		http.StatusUnauthorized: {KindUnauthorized, "Did not provide a valid login token."},
	},
	OpGetMetadata: {
		http.StatusNotFound: {KindNotFound, "Theme not found."},
	},
}

// Outcomes returns a copy of the documented failure codes of op.
func Outcomes(op Operation) map[int]Outcome {
	table := outcomes[op]
	out := make(map[int]Outcome, len(table))
	for code, o := range table {
		out[code] = o
	}
	return out
}

// classify returns nil for 2xx and a *StatusError otherwise.
func classify(op Operation, code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	if o, ok := outcomes[op][code]; ok {
		return &StatusError{Op: op, Code: code, Kind: o.Kind, Message: o.Message}
	}
	return &StatusError{Op: op, Code: code, Kind: KindServer}
}
