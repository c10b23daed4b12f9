package memdom

import "strings"

// selector supports "tag", "[attr]", `[attr="value"]` and "tag[attr=...]"
type selector struct {
	tag      string
	attr     string
	value    string
	hasValue bool
}

func parseSelector(s string) selector {
	s = strings.TrimSpace(s)
	var sel selector

	open := strings.IndexByte(s, '[')
	if open < 0 {
		sel.tag = strings.ToLower(s)
		return sel
	}
	sel.tag = strings.ToLower(s[:open])

	body := strings.TrimSuffix(s[open+1:], "]")
	if eq := strings.IndexByte(body, '='); eq >= 0 {
		sel.attr = body[:eq]
		sel.value = strings.Trim(body[eq+1:], `"'`)
		sel.hasValue = true
	} else {
		sel.attr = body
	}
	return sel
}

func (s selector) matches(n *Node) bool {
	if n == nil || n.isText() {
		return false
	}
	if s.tag != "" && s.tag != "*" && n.tag != s.tag {
		return false
	}
	if s.attr == "" {
		return true
	}
	v, ok := n.attrs[s.attr]
	if !ok {
		return false
	}
	return !s.hasValue || v == s.value
}
