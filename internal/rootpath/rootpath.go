// Package rootpath joins asset-relative paths onto an asset root.
package rootpath

// Join appends rel to root, inserting a solidus unless root already ends
// with a path separator (either '/' or '\').  Existing separators are kept
// as they are.  An empty root yields an empty string.
func Join(root, rel string) string {
	if root == "" {
		return ""
	}

	if last := root[len(root)-1]; last != '/' && last != '\\' {
		root += "/"
	}

	return root + rel
}
