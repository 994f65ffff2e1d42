package http

import "github.com/beevik/etree"

// FindUnique returns the single descendant of root whose local tag name
// equals tag. Descendants at any depth are searched; root itself is not.
// It returns nil if there is no match or more than one.
func FindUnique(root *etree.Element, tag string) *etree.Element {
	if root == nil {
		return nil
	}

	var found *etree.Element
	count := 0
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if count > 1 {
				return
			}
			if child.Tag == tag {
				found = child
				count++
			}
			walk(child)
		}
	}
	walk(root)

	if count != 1 {
		return nil
	}
	return found
}
