package db

import (
	"fmt"

	types "github.com/yungbote/trivia-backend/internal/domain"
)

// AutoMigrate creates or updates the categories and questions tables.
func (s *Service) AutoMigrate() error {
	if err := s.db.AutoMigrate(types.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	s.log.Info("Schema up to date", "tables", []string{"categories", "questions"})
	return nil
}
