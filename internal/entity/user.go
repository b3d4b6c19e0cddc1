package entity

import (
	"time"
)

// Group is a named capability group a user can belong to.
type Group string

const (
	GroupSuperadmin Group = "L10N_SUPERADMIN"
	GroupReviewer   Group = "L10N_REVIEWER"
)

// ValidGroups is a set of valid group names
var ValidGroups = map[Group]bool{
	GroupSuperadmin: true,
	GroupReviewer:   true,
}

// User represents the users table
type User struct {
	Id           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	IsSuperuser  bool      `db:"is_superuser"`
	CreatedAt    time.Time `db:"created_at"`
}

// LocaleAssignment represents the locale_assignment table
type LocaleAssignment struct {
	Id        int       `db:"id"`
	UserId    int       `db:"user_id"`
	LocaleId  int       `db:"locale_id"`
	CreatedAt time.Time `db:"created_at"`
}

// LocaleAssignmentFull is an assignment joined with user and locale names.
type LocaleAssignmentFull struct {
	LocaleAssignment
	Username   string `db:"username"`
	LocaleCode string `db:"locale_code"`
	LocaleName string `db:"locale_name"`
}
