package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

type scope = func(*gorm.DB) *gorm.DB

func ownedBy(userID int64) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

func withStatus(status models.TaskStatus) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	}
}

func titleContains(substring string) scope {
	pattern := "%" + escapeLike(strings.ToLower(substring)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`LOWER(titulo) LIKE ? ESCAPE '\'`, pattern)
	}
}

// Ties on creation time fall back to the id so the order is stable.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("data_criacao DESC").Order("id DESC")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
