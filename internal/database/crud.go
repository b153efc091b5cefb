package database

import (
	"time"

	"github.com/progclub/potd/internal/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// User CRUD

func GetUserByHandle(db *gorm.DB, handle string) (*models.User, error) {
	var user models.User
	if err := db.Where("handle = ?", handle).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureUser creates a user row for the handle if one does not exist yet.
// An existing row is left untouched.
func EnsureUser(db *gorm.DB, handle string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "handle"}},
		DoNothing: true,
	}).Create(&models.User{Handle: handle}).Error
}

// Problem CRUD

func CreateProblem(db *gorm.DB, problem *models.DailyProblem) error {
	return db.Create(problem).Error
}

func GetProblemByID(db *gorm.DB, id uint) (*models.DailyProblem, error) {
	var problem models.DailyProblem
	if err := db.Where("id = ?", id).First(&problem).Error; err != nil {
		return nil, err
	}
	return &problem, nil
}

// GetLatestPostedProblem returns the most recently posted problem whose
// posting time is not in the future.
func GetLatestPostedProblem(db *gorm.DB, now time.Time) (*models.DailyProblem, error) {
	var problem models.DailyProblem
	err := db.Where("posted_at <= ?", now).
		Order("posted_at desc").
		First(&problem).Error
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// GetPostedProblems returns all problems with posted_at <= now, newest first.
func GetPostedProblems(db *gorm.DB, now time.Time) ([]models.DailyProblem, error) {
	var problems []models.DailyProblem
	err := db.Where("posted_at <= ?", now).
		Order("posted_at desc").
		Find(&problems).Error
	if err != nil {
		return nil, err
	}
	return problems, nil
}

// GetAllProblems returns every problem, including ones scheduled in the
// future. Admin use only.
func GetAllProblems(db *gorm.DB) ([]models.DailyProblem, error) {
	var problems []models.DailyProblem
	if err := db.Order("posted_at desc").Find(&problems).Error; err != nil {
		return nil, err
	}
	return problems, nil
}

// Submission CRUD

func CreateSubmission(db *gorm.DB, sub *models.Submission) error {
	return db.Create(sub).Error
}

func HasSubmission(db *gorm.DB, handle string, problemID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Submission{}).
		Where("user_handle = ? AND problem_id = ?", handle, problemID).
		Count(&count).Error
	return count > 0, err
}

// GetSubmissionsForProblem returns all verified solves of one problem,
// ordered by elapsed time ascending. Ties are broken by insertion id so the
// ordering is stable across reads.
func GetSubmissionsForProblem(db *gorm.DB, problemID uint) ([]models.Submission, error) {
	var subs []models.Submission
	err := db.Where("problem_id = ?", problemID).
		Order("time_taken asc, id asc").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func GetSubmissionsByHandle(db *gorm.DB, handle string) ([]models.Submission, error) {
	var subs []models.Submission
	if err := db.Where("user_handle = ?", handle).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// Leaderboard

// GetLeaderboard returns every user with at least one solve, ordered by the
// ranking strategy's sort clause.
func GetLeaderboard(db *gorm.DB, order string) ([]models.User, error) {
	var users []models.User
	err := db.Where("total_solved > 0").
		Order(order).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetLeaderboardPage returns one page of the leaderboard plus the total
// number of ranked users. Pages are 1-based.
func GetLeaderboardPage(db *gorm.DB, order string, page, pageSize int) ([]models.User, int64, error) {
	var total int64
	err := db.Model(&models.User{}).
		Where("total_solved > 0").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var users []models.User
	err = db.Where("total_solved > 0").
		Order(order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
