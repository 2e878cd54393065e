package availability

import (
	"context"
	"time"

	"poc-availability/core/database"
	"poc-availability/core/utils"
	"poc-availability/feature/availability/models"

	"gorm.io/gorm"
)

// Repository is the data access the reconciler needs. Lookups return a nil
// model and a nil error when no row matches.
type Repository interface {
	// ListUpcomingSlots returns the provider's slots dated after from, or on
	// from's date starting at or after from's clock time, ordered by date then start.
	ListUpcomingSlots(ctx context.Context, pocID int64, from time.Time) ([]models.Slot, error)
	// ListScheduleRules returns all of the provider's weekly rules in id order.
	ListScheduleRules(ctx context.Context, pocID int64) ([]models.ScheduleRule, error)
	// GetClient looks up a client by id.
	GetClient(ctx context.Context, clientID int64) (*models.Client, error)
	// GetProvider looks up a provider by id, scoped to the owning client.
	GetProvider(ctx context.Context, pocID, clientID int64) (*models.Provider, error)
}

// GormRepository implements Repository on an injected GORM handle.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository reading through db.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListUpcomingSlots(ctx context.Context, pocID int64, from time.Time) ([]models.Slot, error) {
	date := utils.FormatDate(from)
	clock := from.Format(utils.ClockLayout)

	// SQLite keeps DATE values as timestamp text, so only its leading
	// YYYY-MM-DD is comparable with the cutoff date.
	day := "Schedule_Date"
	if r.db.Dialector.Name() == database.DriverSQLite {
		day = "substr(Schedule_Date, 1, 10)"
	}

	var slots []models.Slot
	err := r.db.WithContext(ctx).
		Where("POC_ID = ? AND ("+day+" > ? OR ("+day+" = ? AND Start_Time >= ?))", pocID, date, date, clock).
		Order("Schedule_Date, Start_Time").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *GormRepository) ListScheduleRules(ctx context.Context, pocID int64) ([]models.ScheduleRule, error) {
	var rules []models.ScheduleRule
	err := r.db.WithContext(ctx).
		Where("POC_ID = ?", pocID).
		Order("Schedule_ID").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *GormRepository) GetClient(ctx context.Context, clientID int64) (*models.Client, error) {
	var client models.Client
	res := r.db.WithContext(ctx).Where("Client_ID = ?", clientID).Find(&client)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &client, nil
}

func (r *GormRepository) GetProvider(ctx context.Context, pocID, clientID int64) (*models.Provider, error) {
	var provider models.Provider
	res := r.db.WithContext(ctx).Where("POC_ID = ? AND Client_ID = ?", pocID, clientID).Find(&provider)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &provider, nil
}
