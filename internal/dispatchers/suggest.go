package dispatchers

import (
	"slices"
	"strings"
)

const maxSuggestDistance = 3

// levenshtein is the case-insensitive edit distance between a and b.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// score ranks name against input: a prefix of at least two letters counts
// as one edit, anything else is the edit distance. ok is false when name
// is the input itself or too far from it.
func score(input, name string) (int, bool) {
	if strings.EqualFold(input, name) {
		return 0, false
	}
	if len(input) >= 2 && strings.HasPrefix(strings.ToLower(name), strings.ToLower(input)) {
		return 1, true
	}
	d := levenshtein(input, name)
	return d, d <= maxSuggestDistance
}

type suggestion struct {
	name     string
	distance int
}

func rank(suggestions []suggestion, maxResults int) []string {
	slices.SortFunc(suggestions, func(a, b suggestion) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		return strings.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(len(suggestions), maxResults))
	for _, s := range suggestions {
		if len(result) == maxResults {
			break
		}
		result = append(result, s.name)
	}
	return result
}

// FindSimilarCommands returns up to maxResults child names of node (aliases
// included) that are close to input, closest first.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil || node.Children == nil {
		return nil
	}

	var suggestions []suggestion
	for name := range node.Children {
		if d, ok := score(input, name); ok {
			suggestions = append(suggestions, suggestion{name: name, distance: d})
		}
	}
	return rank(suggestions, maxResults)
}

// FindNestedCommands returns full command paths below the top level whose
// last word is close to input, so "raven upload" can point at
// "theme upload".
func FindNestedCommands(input string, root *DispatchNode, maxResults int) []string {
	if root == nil {
		return nil
	}

	var suggestions []suggestion
	for _, full := range CollectAllCommands(root, "") {
		i := strings.LastIndex(full, " ")
		if i < 0 {
			continue
		}
		last := full[i+1:]
		if strings.EqualFold(last, input) {
			suggestions = append(suggestions, suggestion{name: full, distance: 0})
		} else if d, ok := score(input, last); ok {
			suggestions = append(suggestions, suggestion{name: full, distance: d})
		}
	}
	return rank(suggestions, maxResults)
}

// CollectAllCommands returns every command path under node, aliases
// included. Alias subtrees are not repeated.
func CollectAllCommands(node *DispatchNode, prefix string) []string {
	if node == nil {
		return nil
	}

	var commands []string
	for name, child := range node.Children {
		full := name
		if prefix != "" {
			full = prefix + " " + name
		}
		commands = append(commands, full)
		if name == child.Name {
			commands = append(commands, CollectAllCommands(child, full)...)
		}
	}
	return commands
}
