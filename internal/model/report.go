package model

// FileStat holds the dry-run census for a single candidate file.
type FileStat struct {
	Path Path
	// Regions is the number of marker regions the selected mode would remove.
	Regions int
	// Doomed is true when the whole-file directive would delete the file.
	Doomed bool
}
