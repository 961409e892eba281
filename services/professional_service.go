package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"consultorio_back_end_go/auth"
	"consultorio_back_end_go/models"
	"consultorio_back_end_go/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func professionalEmailExists(conn *pgxpool.Conn, email string, c *gin.Context) (bool, error) {
	var existingEmail string
	err := conn.QueryRow(c, "SELECT email FROM professional_info WHERE email = $1", email).Scan(&existingEmail)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RegisterProfessional registers a new professional
func RegisterProfessional(c *gin.Context, pool *pgxpool.Pool) {
	logger := utils.GetLogger()
	var professional models.Professional

	if err := c.ShouldBindJSON(&professional); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}

	conn, err := pool.Acquire(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not acquire database connection"})
		return
	}
	defer conn.Release()

	// checking if the email already exists
	exists, err := professionalEmailExists(conn, professional.Email, c)
	if err != nil {
		logger.Error("Error checking email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	// checking if username already exists
	var username string
	err = conn.QueryRow(c, "SELECT username FROM professional_info WHERE username = $1", professional.Username).Scan(&username)
	if err != nil {
		if err.Error() != "no rows in result set" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	// Generating Salt and Hash Password
	saltBytes := make([]byte, 16)
	_, err = rand.Read(saltBytes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	salt := hex.EncodeToString(saltBytes)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(professional.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if _, err := time.Parse("2006-01-02", professional.BirthDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}

	_, err = conn.Exec(c, `
	INSERT INTO professional_info (
		professional_id,
		username,
		first_name,
		last_name,
		sex,
		hashed_password,
		salt,
		specialty,
		registration_number,
		professional_bio,
		email,
		phone_number,
		street_address,
		city_name,
		state_name,
		zip_code,
		birth_date,
		schedule_text,
		rating_score,
		rating_count,
		create_at,
		update_at
	)
	VALUES (
		uuid_generate_v4(),
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
	)`,
		professional.Username,
		professional.FirstName,
		professional.LastName,
		professional.Sex,
		hashedPassword,
		salt,
		professional.Specialty,
		professional.RegistrationNumber,
		professional.ProfessionalBio,
		professional.Email,
		professional.PhoneNumber,
		professional.StreetAddress,
		professional.CityName,
		professional.StateName,
		professional.ZipCode,
		professional.BirthDate,
		professional.ScheduleText,
		nil,
		0,
		time.Now(),
		time.Now(),
	)

	if err != nil {
		logger.Error("Insert professional failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": "true", "message": "Professional registered successfully"})
}

func professionalToAuthUser(p *models.Professional) auth.User {
	return auth.User{ID: p.Email}
}

func LoginProfessional(c *gin.Context, pool *pgxpool.Pool) {
	var loginReq models.LoginRequest

	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Fetch the professional from the database based on the email
	var professional models.Professional
	ctx := context.Background()
	err := pool.QueryRow(ctx, "SELECT email, hashed_password FROM professional_info WHERE email = $1", loginReq.Email).Scan(
		&professional.Email,
		&professional.Password,
	)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	// Comparing the stored hashed password, with the hashed version of the password that was received
	err = bcrypt.CompareHashAndPassword([]byte(professional.Password), []byte(loginReq.Password))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	// generating a session token
	user := professionalToAuthUser(&professional)
	token, err := auth.GenerateToken(user, "professional")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	var professionalId string
	err = pool.QueryRow(ctx, "SELECT professional_id FROM professional_info WHERE email = $1", loginReq.Email).Scan(
		&professionalId,
	)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "professional_id": professionalId})
}

func GetProfessionalById(c *gin.Context, pool *pgxpool.Pool) {
	professionalId := c.Param("professionalId")

	var professional models.Professional
	err := pool.QueryRow(context.Background(), `
		SELECT professional_id, username, first_name, last_name, sex, specialty,
			registration_number, professional_bio, email, phone_number,
			street_address, city_name, state_name, zip_code,
			to_char(birth_date, 'YYYY-MM-DD'), schedule_text, rating_score, rating_count
		FROM professional_info WHERE professional_id = $1`, professionalId).Scan(
		&professional.ProfessionalID,
		&professional.Username,
		&professional.FirstName,
		&professional.LastName,
		&professional.Sex,
		&professional.Specialty,
		&professional.RegistrationNumber,
		&professional.ProfessionalBio,
		&professional.Email,
		&professional.PhoneNumber,
		&professional.StreetAddress,
		&professional.CityName,
		&professional.StateName,
		&professional.ZipCode,
		&professional.BirthDate,
		&professional.ScheduleText,
		&professional.RatingScore,
		&professional.RatingCount,
	)
	if err != nil {
		if err.Error() == "no rows in result set" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
			return
		}
		utils.GetLogger().Error("Get professional failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	professional.Password = ""
	c.JSON(http.StatusOK, professional)
}

func ListProfessionals(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(), `
		SELECT professional_id, first_name, last_name, specialty, email
		FROM professional_info ORDER BY last_name, first_name`)
	if err != nil {
		utils.GetLogger().Error("List professionals failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	professionals := []models.Professional{}
	for rows.Next() {
		var p models.Professional
		if err := rows.Scan(&p.ProfessionalID, &p.FirstName, &p.LastName, &p.Specialty, &p.Email); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		professionals = append(professionals, p)
	}

	c.JSON(http.StatusOK, professionals)
}

// UpdateProfessionalSchedule replaces the free-text weekly hours of one
// professional. The text is stored as typed; it is parsed on every
// availability request, never here.
func UpdateProfessionalSchedule(c *gin.Context, pool *pgxpool.Pool) {
	professionalId := c.Param("professionalId")

	var req struct {
		ScheduleText string `json:"ScheduleText"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tag, err := pool.Exec(context.Background(),
		"UPDATE professional_info SET schedule_text = $1, update_at = $2 WHERE professional_id = $3",
		req.ScheduleText, time.Now(), professionalId)
	if err != nil {
		utils.GetLogger().Error("Update schedule failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule updated successfully"})
}
