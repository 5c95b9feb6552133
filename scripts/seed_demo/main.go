// Command seed_demo writes a demo meeting snapshot into the file store so the
// API starts with data during local development:
//
//	go run ./scripts/seed_demo -path ./data/promeet_data.json
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/promeet/roster-api/internal/models"
	"github.com/promeet/roster-api/internal/repository"
)

func main() {
	var path string
	flag.StringVar(&path, "path", "./data/promeet_data.json", "Snapshot file path")
	flag.Parse()

	repo, err := repository.NewFileSnapshotRepository(path)
	if err != nil {
		log.Fatalf("failed to open snapshot file: %v", err)
	}

	now := time.Now()
	meetings := []models.Meeting{
		{
			ID:        uuid.NewString(),
			Title:     models.DefaultMeetingTitle + " " + now.Format("2006/1/2"),
			Date:      now.Format("2006-01-02"),
			CreatedAt: now.UnixMilli(),
			Attendees: []models.Attendee{
				{ID: uuid.NewString(), Department: "销售部", JobTitle: "总监", Name: "李雷", ContactName: "王芳", Phone: "13800000001", IsNotified: true, HasRsvp: true, Status: models.StatusPresent},
				{ID: uuid.NewString(), Department: "销售部", JobTitle: "经理", Name: "张伟", ContactName: "王芳", Phone: "13800000001", IsNotified: true, Status: models.StatusPending},
				{ID: uuid.NewString(), Department: "市场部", JobTitle: "专员", Name: "韩梅梅", ContactName: "刘强", Phone: "13800000002", IsNotified: true, HasRsvp: true, Status: models.StatusLeave, LeaveReason: "出差"},
				{ID: uuid.NewString(), Department: "技术部", JobTitle: "架构师", Name: "陈晨", ContactName: "赵敏", Phone: "13800000003", Status: models.StatusPending},
			},
		},
	}

	if err := repo.Save(context.Background(), meetings); err != nil {
		log.Fatalf("failed to write snapshot: %v", err)
	}

	log.Printf("seeded %d meeting(s) into %s", len(meetings), path)
}
