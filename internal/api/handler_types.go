package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nutriclin/nutriclin/internal/db"
	"github.com/nutriclin/nutriclin/internal/services"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	authCookieName = "nutriclin_auth"
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	logger       zerolog.Logger

	repositories *db.Repositories

	authService        *services.AuthService
	patientService     *services.PatientService
	measurementService *services.MeasurementService
	energyService      *services.EnergyService
	foodService        *services.FoodService
	planService        *services.DietPlanService
	exportService      *services.ExportService
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type credentialsInput struct {
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	DisplayName string `json:"display_name" form:"display_name"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type patientInput struct {
	FullName  string  `json:"full_name" form:"full_name"`
	Email     string  `json:"email" form:"email"`
	Phone     string  `json:"phone" form:"phone"`
	Sex       string  `json:"sex" form:"sex"`
	BirthDate string  `json:"birth_date" form:"birth_date"`
	HeightCm  float64 `json:"height_cm" form:"height_cm"`
	Notes     string  `json:"notes" form:"notes"`
}

type planInput struct {
	Title string `json:"title" form:"title"`
}

type mealInput struct {
	Name  string `json:"name" form:"name"`
	Time  string `json:"time" form:"time"`
	Kind  string `json:"kind" form:"kind"`
	Notes string `json:"notes" form:"notes"`
}

type planItemInput struct {
	FoodID       uint    `json:"food_id" form:"food_id"`
	GramQuantity float64 `json:"gram_quantity" form:"gram_quantity"`
	UnitQuantity float64 `json:"unit_quantity" form:"unit_quantity"`
}
