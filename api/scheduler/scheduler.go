package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteer-match-api/databases"
	"github.com/volunteerhub/volunteer-match-api/models"
	templates "github.com/volunteerhub/volunteer-match-api/templates/html"
)

// reminderStaleness is how long an active record can go without an hour
// update before the volunteer gets a nudge
const reminderStaleness = 14 * 24 * time.Hour

// Scheduler handles periodic background jobs for volunteer hour bookkeeping
type Scheduler struct {
	cron       *cron.Cron
	RDB        databases.VolunteeringRecordDatabase
	UDB        databases.UserDatabase
	ODB        databases.OpportunityDatabase
	instanceID string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(
	rDB databases.VolunteeringRecordDatabase,
	uDB databases.UserDatabase,
	oDB databases.OpportunityDatabase,
) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		RDB:        rDB,
		UDB:        uDB,
		ODB:        oDB,
		instanceID: instanceID,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Recompute denormalized volunteer hour totals daily at 3 AM UTC
	_, err := s.cron.AddFunc("0 3 * * *", s.recomputeHourTotals)
	if err != nil {
		zap.S().Errorw("failed to register hour total job", "error", err)
	}

	// Nudge volunteers with stale active records every Monday at 9 AM UTC
	_, err = s.cron.AddFunc("0 9 * * 1", s.sendHoursReminders)
	if err != nil {
		zap.S().Errorw("failed to register hours reminder job", "error", err)
	}

	s.cron.Start()
	zap.S().Infow("volunteer scheduler started", "instanceId", s.instanceID)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("volunteer scheduler stopped")
}

type hourTotal struct {
	UserID     string  `bson:"_id"`
	TotalHours float64 `bson:"totalHours"`
}

// recomputeHourTotals rebuilds each user's totalVolunteerHours from their
// volunteering records. The stored total is a cache; the records are the
// source of truth.
func (s *Scheduler) recomputeHourTotals() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":        "$volunteeringRecord.userID",
			"totalHours": bson.M{"$sum": "$volunteeringRecord.hoursContributed"},
		}},
	}

	var totals []hourTotal
	if err := s.RDB.Aggregate(ctx, pipeline, &totals); err != nil {
		zap.S().Errorw("failed to aggregate volunteer hours", "error", err)
		return
	}

	updated := 0
	for _, total := range totals {
		uID, err := primitive.ObjectIDFromHex(total.UserID)
		if err != nil {
			zap.S().Warnw("skipping hour total with bad user ID", "userId", total.UserID, "error", err)
			continue
		}
		err = s.UDB.UpdateOne(ctx, bson.M{"_id": uID}, bson.M{
			"$set": bson.M{
				"user.totalVolunteerHours": total.TotalHours,
				"user.updatedAt":           primitive.NewDateTimeFromTime(time.Now()),
			},
		})
		if err != nil {
			zap.S().Errorw("failed to update user hour total", "userId", total.UserID, "error", err)
			continue
		}
		updated++
	}

	zap.S().Infow("recomputed volunteer hour totals", "users", updated)
}

// sendHoursReminders emails volunteers whose active records have not been
// touched in a while
func (s *Scheduler) sendHoursReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := primitive.NewDateTimeFromTime(time.Now().Add(-reminderStaleness))
	records, err := s.RDB.Find(ctx, bson.M{
		"volunteeringRecord.status":    models.RecordStatusActive,
		"volunteeringRecord.updatedAt": bson.M{"$lt": cutoff},
	})
	if err != nil {
		zap.S().Errorw("failed to find stale volunteering records", "error", err)
		return
	}

	sent := 0
	for _, record := range records {
		email, name := s.getUserEmail(ctx, record.Details.UserID)
		if email == "" {
			continue
		}

		title := "your volunteering opportunity"
		if oID, err := primitive.ObjectIDFromHex(record.Details.OpportunityID); err == nil {
			if opportunity, err := s.ODB.FindOne(ctx, bson.M{"_id": oID}); err == nil {
				title = opportunity.Details.Title
			}
		}

		html := templates.RenderHoursReminderEmail(name, title)
		if err := s.sendEmail(email, name, "Don't forget to log your volunteering hours", html, "Don't forget to log your volunteering hours"); err != nil {
			zap.S().Errorw("failed to send hours reminder", "userId", record.Details.UserID, "error", err)
			continue
		}
		sent++
	}

	zap.S().Infow("sent hours reminders", "count", sent, "stale", len(records))
}

// --- Email Helper Functions ---

func (s *Scheduler) sendEmail(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail("VolunteerHub", "no-reply@volunteerhub.org")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}

func (s *Scheduler) getUserEmail(ctx context.Context, userID string) (email, name string) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", ""
	}
	user, err := s.UDB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		zap.S().Warnw("failed to look up user for reminder", "userId", userID, "error", err)
		return "", ""
	}
	return user.Details.Email, user.Details.Name
}
