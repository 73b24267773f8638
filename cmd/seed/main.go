package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"github.com/skemono/Proyecto-3-BD/internal/database"
	"github.com/skemono/Proyecto-3-BD/internal/models"
	"github.com/skemono/Proyecto-3-BD/internal/repository"
)

var (
	genders         = []string{"M", "F", "O"}
	specializations = []string{"Fuerza", "Cardio", "Yoga", "CrossFit"}
	exerciseTypes   = []string{"Fuerza", "Cardio", "Flexibilidad", "Equilibrio"}
	muscleGroups    = []string{"Pecho", "Espalda", "Piernas", "Brazos", "Hombros", "Core"}
	equipmentTypes  = []string{"Máquina", "Peso libre", "Accesorio"}
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, dbUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	memberRepo := repository.NewMemberRepository(pool)
	coachRepo := repository.NewCoachRepository(pool)
	exerciseRepo := repository.NewExerciseRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	membershipRepo := repository.NewMembershipRepository(pool)

	existing, err := memberRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to check for existing data: %v", err)
	}
	if existing > 0 {
		log.Println("Database already has data, nothing to seed")
		return
	}

	gofakeit.Seed(0)
	now := time.Now()

	var memberIDs []int64
	for i := 0; i < 100; i++ {
		member, err := memberRepo.Create(ctx, repository.CreateMemberInput{
			Name:      gofakeit.Name(),
			BirthDate: gofakeit.DateRange(now.AddDate(-60, 0, 0), now.AddDate(-18, 0, 0)),
			Gender:    gofakeit.RandomString(genders),
			HeightCM:  float64(gofakeit.Number(150, 200)),
			JoinDate:  gofakeit.DateRange(now.AddDate(-1, 0, 0), now),
		})
		if err != nil {
			log.Fatalf("Failed to seed member: %v", err)
		}
		memberIDs = append(memberIDs, member.ID)

		if err := memberRepo.AddContact(ctx, member.ID, "Email", gofakeit.Email()); err != nil {
			log.Fatalf("Failed to seed member contact: %v", err)
		}
		if err := memberRepo.AddContact(ctx, member.ID, "Phone", gofakeit.Phone()); err != nil {
			log.Fatalf("Failed to seed member contact: %v", err)
		}
	}

	var coachIDs []int64
	for i := 0; i < 10; i++ {
		coach, err := coachRepo.Create(ctx, gofakeit.Name(), gofakeit.RandomString(specializations))
		if err != nil {
			log.Fatalf("Failed to seed coach: %v", err)
		}
		coachIDs = append(coachIDs, coach.ID)

		if err := coachRepo.AddContact(ctx, coach.ID, "Email", gofakeit.Email()); err != nil {
			log.Fatalf("Failed to seed coach contact: %v", err)
		}
		if err := coachRepo.AddContact(ctx, coach.ID, "Phone", gofakeit.Phone()); err != nil {
			log.Fatalf("Failed to seed coach contact: %v", err)
		}
	}

	var equipmentIDs []int64
	for i := 0; i < 15; i++ {
		equipment, err := exerciseRepo.CreateEquipment(ctx,
			fmt.Sprintf("%s %s", gofakeit.RandomString(equipmentTypes), gofakeit.Word()),
			gofakeit.RandomString(equipmentTypes),
			fmt.Sprintf("Zona %d", gofakeit.Number(1, 5)),
		)
		if err != nil {
			log.Fatalf("Failed to seed equipment: %v", err)
		}
		equipmentIDs = append(equipmentIDs, equipment.ID)
	}

	var exerciseIDs []int64
	for i := 0; i < 20; i++ {
		exercise, err := exerciseRepo.Create(ctx,
			fmt.Sprintf("Ejercicio %s %d", gofakeit.Word(), i+1),
			gofakeit.RandomString(exerciseTypes),
		)
		if err != nil {
			log.Fatalf("Failed to seed exercise: %v", err)
		}
		exerciseIDs = append(exerciseIDs, exercise.ID)

		for j := 0; j < gofakeit.Number(1, 2); j++ {
			if err := exerciseRepo.AddMuscleGroup(ctx, exercise.ID, gofakeit.RandomString(muscleGroups)); err != nil {
				log.Fatalf("Failed to seed muscle group: %v", err)
			}
		}
		equipmentID := equipmentIDs[gofakeit.Number(0, len(equipmentIDs)-1)]
		if err := exerciseRepo.LinkEquipment(ctx, exercise.ID, equipmentID); err != nil {
			log.Fatalf("Failed to seed exercise equipment: %v", err)
		}
	}

	for i := 0; i < 500; i++ {
		session, err := sessionRepo.Create(ctx, repository.CreateSessionInput{
			Date:     gofakeit.DateRange(now.AddDate(0, -6, 0), now),
			Time:     fmt.Sprintf("%02d:%02d", gofakeit.Number(6, 21), gofakeit.Number(0, 59)),
			MemberID: memberIDs[gofakeit.Number(0, len(memberIDs)-1)],
			CoachID:  coachIDs[gofakeit.Number(0, len(coachIDs)-1)],
		})
		if err != nil {
			log.Fatalf("Failed to seed session: %v", err)
		}

		for j := 0; j < gofakeit.Number(1, 3); j++ {
			_, err := sessionRepo.AddDetail(ctx, repository.AddDetailInput{
				SessionID:       session.ID,
				ExerciseID:      exerciseIDs[gofakeit.Number(0, len(exerciseIDs)-1)],
				Sets:            gofakeit.Number(1, 5),
				Reps:            gofakeit.Number(5, 15),
				WeightKG:        float64(gofakeit.Number(5, 100)),
				DurationMinutes: gofakeit.Number(10, 30),
			})
			if err != nil {
				log.Fatalf("Failed to seed session detail: %v", err)
			}
		}
	}

	for i := 0; i < 300; i++ {
		_, err := progressRepo.Create(ctx, repository.CreateProgressInput{
			MemberID:       memberIDs[gofakeit.Number(0, len(memberIDs)-1)],
			Date:           gofakeit.DateRange(now.AddDate(0, -6, 0), now),
			WeightKG:       float64(gofakeit.Number(50, 120)),
			BodyFatPercent: float64(gofakeit.Number(8, 35)),
		})
		if err != nil {
			log.Fatalf("Failed to seed progress record: %v", err)
		}
	}

	plans := []models.MembershipPlan{
		{Name: "Básico", Description: "Acceso a sala de pesas", Price: 25, DurationMonths: 1},
		{Name: "Estándar", Description: "Sala de pesas y clases grupales", Price: 65, DurationMonths: 3},
		{Name: "Premium", Description: "Acceso completo con entrenador", Price: 120, DurationMonths: 6},
		{Name: "Anual", Description: "Acceso completo todo el año", Price: 220, DurationMonths: 12},
	}
	var planIDs []int64
	for _, plan := range plans {
		created, err := membershipRepo.CreatePlan(ctx, plan)
		if err != nil {
			log.Fatalf("Failed to seed plan: %v", err)
		}
		planIDs = append(planIDs, created.ID)
	}

	for i := 0; i < 150; i++ {
		_, err := membershipRepo.Create(ctx, repository.CreateMembershipInput{
			MemberID:  memberIDs[gofakeit.Number(0, len(memberIDs)-1)],
			PlanID:    planIDs[gofakeit.Number(0, len(planIDs)-1)],
			StartDate: gofakeit.DateRange(now.AddDate(-1, 0, 0), now),
		})
		if err != nil {
			log.Fatalf("Failed to seed membership: %v", err)
		}
	}

	log.Println("Seed completed")
}
