package models

import "time"

type Task struct {
	ID          int64      `gorm:"primaryKey"`
	UserID      int64      `gorm:"not null;index"`
	Title       string     `gorm:"column:titulo;size:100;not null"`
	Description *string    `gorm:"column:descricao;size:500"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'PENDENTE'"`
	CreatedAt   time.Time  `gorm:"column:data_criacao;not null;index"`
	DueAt       time.Time  `gorm:"column:data_vencimento;not null"`
}

func (Task) TableName() string { return "tasks" }
