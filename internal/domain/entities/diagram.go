// Package entities holds the domain types shared across the sync pipeline.
package entities

// Diagram represents a discovered diagram-definition file
type Diagram struct {
	Path     string // Slash-separated path relative to the scan root, e.g. "foo/etc/foo.urm.puml"
	Parent   string // First path element, the pattern folder
	Artifact string // File name without the diagram suffix
	Document string // Slash-separated path of the README the identifier belongs in
}

// SelfNamed reports whether the diagram lives in a folder named after its artifact.
// Only self-named diagrams are patched automatically.
func (d *Diagram) SelfNamed() bool {
	return d.Parent == d.Artifact
}

// Render is the result of uploading a diagram to the rendering service
type Render struct {
	ID         string
	URL        string // Final URL after redirects
	StatusCode int
}
