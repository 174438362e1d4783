package tui

// hyperlink wraps label in an OSC 8 escape so terminals that support it make
// the label clickable. Terminals without support print the label only.
func hyperlink(url string, label string) string {
	if url == "" {
		return label
	}
	return "\x1b]8;;" + url + "\x1b\\" + label + "\x1b]8;;\x1b\\"
}
