package types

// Status is the soft-delete lifecycle status shared by all persisted models
type Status string

const (
	StatusPublished Status = "published"
	StatusDeleted   Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}
