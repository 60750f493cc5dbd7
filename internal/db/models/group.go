package models

import "time"

type Group struct {
	ID        int       `json:"id" pg:",pk"`
	Name      string    `json:"name" pg:",notnull"`
	AdminID   int       `json:"admin_id" pg:",notnull"`
	Admin     *User     `json:"admin" pg:"rel:has-one"`
	Members   []User    `json:"members" pg:"many2many:group_members"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
}
