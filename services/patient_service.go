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

func patientEmailExists(conn *pgxpool.Conn, email string, c *gin.Context) (bool, error) {
	var existingEmail string
	err := conn.QueryRow(c, "SELECT email FROM patient_info WHERE email = $1", email).Scan(&existingEmail)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RegisterPatient registers a new patient
func RegisterPatient(c *gin.Context, pool *pgxpool.Pool) {
	logger := utils.GetLogger()
	var patient models.Patient

	if err := c.ShouldBindJSON(&patient); err != nil {
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
	exists, err := patientEmailExists(conn, patient.Email, c)
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
	err = conn.QueryRow(c, "SELECT username FROM patient_info WHERE username = $1", patient.Username).Scan(&username)
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

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(patient.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if _, err := time.Parse("2006-01-02", patient.BirthDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}

	_, err = conn.Exec(c, `
	INSERT INTO patient_info (
		patient_id,
		username,
		first_name,
		last_name,
		sex,
		hashed_password,
		salt,
		patient_bio,
		email,
		phone_number,
		street_address,
		city_name,
		state_name,
		zip_code,
		birth_date,
		create_at,
		update_at
	)
	VALUES (
		uuid_generate_v4(),
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16
	)`,
		patient.Username,
		patient.FirstName,
		patient.LastName,
		patient.Sex,
		hashedPassword,
		salt,
		patient.PatientBio,
		patient.Email,
		patient.PhoneNumber,
		patient.StreetAddress,
		patient.CityName,
		patient.StateName,
		patient.ZipCode,
		patient.BirthDate,
		time.Now(),
		time.Now(),
	)
	if err != nil {
		logger.Error("Insert patient failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": "true", "message": "Patient registered successfully"})
}

func patientToAuthUser(p *models.Patient) auth.User {
	return auth.User{ID: p.Email}
}

func LoginPatient(c *gin.Context, pool *pgxpool.Pool) {
	var loginReq models.LoginRequest

	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// Fetching the patient from the database based on the email
	var patient models.Patient
	ctx := context.Background()
	err := pool.QueryRow(ctx, "SELECT email, hashed_password FROM patient_info WHERE email = $1", loginReq.Email).Scan(
		&patient.Email,
		&patient.Password,
	)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	// Comparing the stored hashed password, with the hashed version of the password that was received
	err = bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(loginReq.Password))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	// generating a session token
	user := patientToAuthUser(&patient)
	token, err := auth.GenerateToken(user, "patient")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	var patientId string
	err = pool.QueryRow(ctx, "SELECT patient_id FROM patient_info WHERE email = $1", loginReq.Email).Scan(
		&patientId,
	)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "patient_id": patientId})
}

func GetPatientById(c *gin.Context, pool *pgxpool.Pool) {
	patientId := c.Param("patientId")

	var patient models.Patient
	err := pool.QueryRow(context.Background(), `
		SELECT patient_id, username, first_name, last_name, sex, patient_bio,
			email, phone_number, street_address, city_name, state_name, zip_code,
			to_char(birth_date, 'YYYY-MM-DD')
		FROM patient_info WHERE patient_id = $1`, patientId).Scan(
		&patient.PatientID,
		&patient.Username,
		&patient.FirstName,
		&patient.LastName,
		&patient.Sex,
		&patient.PatientBio,
		&patient.Email,
		&patient.PhoneNumber,
		&patient.StreetAddress,
		&patient.CityName,
		&patient.StateName,
		&patient.ZipCode,
		&patient.BirthDate,
	)
	if err != nil {
		if err.Error() == "no rows in result set" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		utils.GetLogger().Error("Get patient failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	patient.Password = ""
	c.JSON(http.StatusOK, patient)
}

func ListPatients(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(), `
		SELECT patient_id, first_name, last_name, email, phone_number
		FROM patient_info ORDER BY last_name, first_name`)
	if err != nil {
		utils.GetLogger().Error("List patients failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		var p models.Patient
		if err := rows.Scan(&p.PatientID, &p.FirstName, &p.LastName, &p.Email, &p.PhoneNumber); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		patients = append(patients, p)
	}

	c.JSON(http.StatusOK, patients)
}
