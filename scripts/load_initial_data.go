package main

import (
	"fmt"
	"log"
	"os"

	"lead-rotation-backend/internal/config"
	"lead-rotation-backend/internal/database"
	"lead-rotation-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match DB schema
type QueueData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Color       string   `yaml:"color,omitempty"`
	Roster      []string `yaml:"roster,omitempty"` // agent emails, in rotation order
}

type AgentData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone,omitempty"`
	WhatsApp string `yaml:"whatsapp,omitempty"`
}

type SeedData struct {
	Agents []AgentData `yaml:"agents"`
	Queues []QueueData `yaml:"queues"`
}

func main() {
	path := "scripts/seed_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", path, err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	if err := seed(db, &data); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d agents and %d queues from %s", len(data.Agents), len(data.Queues), path)
}

func seed(db *gorm.DB, data *SeedData) error {
	return db.Transaction(func(tx *gorm.DB) error {
		agentsByEmail := make(map[string]*models.Agent, len(data.Agents))

		for _, a := range data.Agents {
			agent := &models.Agent{
				Name:     a.Name,
				Email:    a.Email,
				Phone:    a.Phone,
				WhatsApp: a.WhatsApp,
				IsActive: true,
			}
			// Idempotent on email: rerunning the script updates profiles
			// instead of failing on the unique index.
			var existing models.Agent
			err := tx.Where("email = ?", a.Email).First(&existing).Error
			switch {
			case err == nil:
				existing.Name = a.Name
				existing.Phone = a.Phone
				existing.WhatsApp = a.WhatsApp
				if err := tx.Save(&existing).Error; err != nil {
					return fmt.Errorf("updating agent %s: %w", a.Email, err)
				}
				agentsByEmail[a.Email] = &existing
			case err == gorm.ErrRecordNotFound:
				if err := tx.Create(agent).Error; err != nil {
					return fmt.Errorf("creating agent %s: %w", a.Email, err)
				}
				agentsByEmail[a.Email] = agent
			default:
				return fmt.Errorf("looking up agent %s: %w", a.Email, err)
			}
		}

		for _, q := range data.Queues {
			var queue models.Queue
			err := tx.Where("name = ? AND is_active = ?", q.Name, true).First(&queue).Error
			switch {
			case err == gorm.ErrRecordNotFound:
				queue = models.Queue{
					Name:        q.Name,
					Description: q.Description,
					IsActive:    true,
				}
				if q.Color != "" {
					queue.Color = q.Color
				}
				if err := tx.Create(&queue).Error; err != nil {
					return fmt.Errorf("creating queue %s: %w", q.Name, err)
				}
			case err != nil:
				return fmt.Errorf("looking up queue %s: %w", q.Name, err)
			}

			for i, email := range q.Roster {
				agent, ok := agentsByEmail[email]
				if !ok {
					return fmt.Errorf("queue %s references unknown agent %s", q.Name, email)
				}
				var count int64
				if err := tx.Model(&models.RosterEntry{}).
					Where("queue_id = ? AND agent_id = ?", queue.ID, agent.ID).
					Count(&count).Error; err != nil {
					return fmt.Errorf("checking roster for %s: %w", email, err)
				}
				if count > 0 {
					continue
				}
				entry := &models.RosterEntry{
					QueueID:  queue.ID,
					AgentID:  agent.ID,
					Position: i + 1,
				}
				if err := tx.Create(entry).Error; err != nil {
					return fmt.Errorf("rostering %s in %s: %w", email, q.Name, err)
				}
			}
		}

		return nil
	})
}
