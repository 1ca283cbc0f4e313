package assets

// AssetLoader loads style files and template sets by name.
type AssetLoader interface {
	// LoadStyle returns the content of styles/{name}.sty.
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet returns the templates under templates/{name}/.
	// Returns ErrTemplateSetNotFound if no template of the set exists,
	// ErrIncompleteTemplateSet if only some do.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
