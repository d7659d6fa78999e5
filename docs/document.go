package docs

import "strings"

// Marker is the sentinel line separating the kernel region from the
// conversation region. A well-formed document contains it exactly once.
const Marker = "# === CONVERSATION ==="

// MarkerCount reports how many lines of content equal Marker.
func MarkerCount(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		if line == Marker {
			n++
		}
	}
	return n
}

// SplitRegions splits content at the first marker line. The kernel region
// is everything strictly above the marker, the log region starts at the
// marker line. ok is false when there is no marker line.
func SplitRegions(content string) (kernel string, log string, ok bool) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if line == Marker {
			return strings.Join(lines[:i], "\n"),
				strings.Join(lines[i:], "\n"),
				true
		}
	}
	return content, "", false
}

// KernelOf returns the kernel region, or the whole content when there is
// no marker line.
func KernelOf(content string) string {
	kernel, _, _ := SplitRegions(content)
	return kernel
}

// CommentLine turns a line into a conversation-region comment.
func CommentLine(line string) string {
	if line == "" {
		return "#"
	}
	if strings.HasPrefix(line, "#") {
		return line
	}
	return "# " + strings.TrimLeft(line, " \t")
}

// CommentBlock comments every line of message.
func CommentBlock(message string) string {
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = "#"
		} else {
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}

// AppendMessage appends message to the end of the document as comment
// lines, separated from existing content by a bare comment line. The end
// of a well-formed document is always inside the log region.
func AppendMessage(content string, message string) string {
	return strings.TrimRight(content, " \t\n") + "\n#\n" + CommentBlock(message)
}
