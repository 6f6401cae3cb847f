package models

// Term represents a row in wp_terms. Categories and tags share this table;
// the taxonomy row decides which one a term is.
type Term struct {
	TermID    int64  `gorm:"primaryKey;autoIncrement;column:term_id" json:"term_id"`
	Name      string `gorm:"type:varchar(200);column:name" json:"name"`
	Slug      string `gorm:"type:varchar(200);column:slug" json:"slug"`
	TermGroup int64  `gorm:"column:term_group" json:"term_group"`
}

// TableName specifies the table name for Term
func (Term) TableName() string {
	return "wp_terms"
}

// TermTaxonomy represents a row in wp_term_taxonomy
type TermTaxonomy struct {
	TermTaxonomyID int64  `gorm:"primaryKey;autoIncrement;column:term_taxonomy_id"`
	TermID         int64  `gorm:"column:term_id"`
	Taxonomy       string `gorm:"type:varchar(32);column:taxonomy"`
	Description    string `gorm:"type:longtext;column:description"`
	Parent         int64  `gorm:"column:parent"`
	Count          int64  `gorm:"column:count"`
}

// TableName specifies the table name for TermTaxonomy
func (TermTaxonomy) TableName() string {
	return "wp_term_taxonomy"
}
