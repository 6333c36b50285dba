package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// phoneのunique違反はErrConflictに寄せる
		if isUniqueViolation(err) {
			return domainrepo.ErrConflict
		}
		return err
	}
	return nil
}

func (r *userGormRepository) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("id = ?", userID).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userGormRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("phone = ?", phone).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userGormRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// postgresのunique_violation(23505)かどうか
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

type roleGormRepository struct {
	db *gorm.DB
}

// DI
func NewRoleGormRepository(db *gorm.DB) domainrepo.RoleRepository {
	return &roleGormRepository{db: db}
}

func (r *roleGormRepository) FindByName(ctx context.Context, roleName string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Where("role_name = ?", roleName).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleGormRepository) Create(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		if isUniqueViolation(err) {
			return domainrepo.ErrConflict
		}
		return err
	}
	return nil
}
