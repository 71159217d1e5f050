package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// List names recognised by the phone list store.
const (
	ListWhitelist = "whitelist"
	ListBlacklist = "blacklist"
	ListBlocked   = "blocked"
)

// PhoneList represents a named set of phone numbers. Membership has set
// semantics: a number appears at most once per list.
type PhoneList struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ListName string             `bson:"listName" json:"listName"`
	Numbers  []string           `bson:"numbers" json:"numbers"`
}

// IsValidListName reports whether name is one of the recognised lists.
func IsValidListName(name string) bool {
	switch name {
	case ListWhitelist, ListBlacklist, ListBlocked:
		return true
	}
	return false
}
