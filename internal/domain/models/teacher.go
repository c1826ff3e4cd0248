// internal/domain/models/teacher.go
package models

// Teacher is a directory record for a staff member who may manage
// announcements. The username doubles as the document key, which is how the
// roster data was originally loaded.
type Teacher struct {
	Username    string `bson:"_id" json:"username"`
	DisplayName string `bson:"display_name,omitempty" json:"display_name,omitempty"`
}
