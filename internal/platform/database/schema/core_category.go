package schema

import "github.com/taibuivan/bluevelvet/internal/platform/constants"

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table        string
	ID           string
	Name         string
	Image        string
	ParentID     string
	Enabled      string
	CreationTime string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table:        constants.SchemaCore + ".category",
	ID:           "id",
	Name:         "name",
	Image:        "image",
	ParentID:     "parentid",
	Enabled:      "enabled",
	CreationTime: "creationtime",
}

func (t CoreCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Image, t.ParentID, t.Enabled, t.CreationTime}
}

// InsertColumns lists the columns written on insert; id and creationtime
// are assigned by the database.
func (t CoreCategoryTable) InsertColumns() []string {
	return []string{t.Name, t.Image, t.ParentID, t.Enabled}
}
