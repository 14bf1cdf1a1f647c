package db

import "gorm.io/gorm"

type Repositories struct {
	Users  *UserRepository
	States *StateRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(database),
		States: NewStateRepository(database),
	}
}
