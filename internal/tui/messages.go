package tui

import (
	"github.com/alternajob/user-service/models"
)

type usersLoadedMsg struct {
	users []models.UserResponse
	err   error
}

type userSavedMsg struct {
	err error
}

type userDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
