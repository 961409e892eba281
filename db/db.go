package db

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
)

func InitDatabase() (*pgxpool.Pool, error) {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}
	host := os.Getenv("DATABASE_HOST")
	port := os.Getenv("DATABASE_PORT")
	user := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")
	database_name := os.Getenv("DATABASE_NAME")

	config, err := pgxpool.ParseConfig(" host=" + host + " port=" + port + " user=" + user + " password=" + password + " database=" + database_name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	conn, err := pgxpool.ConnectConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Create tables
	sqlQueries := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS professional_info (
			professional_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			username VARCHAR(50) NOT NULL,
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL,
			sex VARCHAR(50) NOT NULL,
			hashed_password VARCHAR(100) NOT NULL,
			salt VARCHAR(50) NOT NULL,
			specialty VARCHAR(50) NOT NULL,
			registration_number VARCHAR(50) NOT NULL,
			professional_bio TEXT NOT NULL DEFAULT '',
			email VARCHAR(50) NOT NULL,
			phone_number VARCHAR(50) NOT NULL,
			street_address VARCHAR(100) NOT NULL,
			city_name VARCHAR(50) NOT NULL,
			state_name VARCHAR(50) NOT NULL,
			zip_code VARCHAR(50) NOT NULL,
			birth_date DATE NOT NULL,
			schedule_text TEXT NOT NULL DEFAULT '',
			rating_score NUMERIC,
			rating_count INTEGER NOT NULL DEFAULT 0,
			create_at TIMESTAMP NOT NULL DEFAULT NOW(),
			update_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS patient_info (
			patient_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			username VARCHAR(50) NOT NULL,
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL,
			sex VARCHAR(50) NOT NULL,
			hashed_password VARCHAR(100) NOT NULL,
			salt VARCHAR(50) NOT NULL,
			patient_bio TEXT NOT NULL DEFAULT '',
			email VARCHAR(50) NOT NULL,
			phone_number VARCHAR(50) NOT NULL,
			street_address VARCHAR(100) NOT NULL,
			city_name VARCHAR(50) NOT NULL,
			state_name VARCHAR(50) NOT NULL,
			zip_code VARCHAR(50) NOT NULL,
			birth_date DATE NOT NULL,
			create_at TIMESTAMP NOT NULL DEFAULT NOW(),
			update_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS service_info (
			service_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(100) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price_cents INTEGER NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE
		)`,

		`CREATE TABLE IF NOT EXISTS medical_records (
			record_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			patient_id uuid REFERENCES patient_info(patient_id),
			professional_id uuid REFERENCES professional_info(professional_id),
			record_date TIMESTAMP NOT NULL DEFAULT NOW(),
			notes TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS appointments (
			appointment_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			appointment_start TIMESTAMP NOT NULL,
			appointment_end TIMESTAMP NOT NULL,
			title VARCHAR(100) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'AGENDADO',
			professional_id uuid REFERENCES professional_info(professional_id),
			patient_id uuid REFERENCES patient_info(patient_id),
			service_id uuid REFERENCES service_info(service_id),
			UNIQUE (professional_id, appointment_start)
		)`,
	}

	for _, query := range sqlQueries {
		_, err = conn.Exec(context.Background(), query)
		if err != nil {
			return nil, fmt.Errorf("failed to create table: %v", err)
		}
	}

	return conn, nil
}
