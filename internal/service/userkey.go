package service

import "github.com/google/uuid"

var userNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://momhive.app/users"))

// UserKey is a stable, filesystem-safe identifier derived from a username
func UserKey(username string) string {
	return uuid.NewSHA1(userNamespace, []byte(username)).String()
}
