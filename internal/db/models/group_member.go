package models

import "github.com/go-pg/pg/v10/orm"

func init() {
	orm.RegisterTable((*GroupMember)(nil))
}

type GroupMember struct {
	GroupID int `pg:",pk"`
	UserID  int `pg:",pk"`
}
