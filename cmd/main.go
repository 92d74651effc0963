package main

import (
	"MediCare/cache"
	"MediCare/config"
	"MediCare/database"
	"MediCare/handlers"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/routes"
	"MediCare/services"
	"MediCare/utils"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/go-redis/redis/v8"
	"google.golang.org/api/iterator"
	"gorm.io/gorm"
)

const version = "1.0.0"

// backends holds the connections opened for the configured store and auth
// backends. Fields stay nil when a backend is not in use.
type backends struct {
	db        *gorm.DB
	redis     *redis.Client
	firebase  *firebase.App
	firestore *firestore.Client
}

func (b *backends) close() {
	if b.firestore != nil {
		if err := b.firestore.Close(); err != nil {
			log.Printf("Failed to close firestore client: %v", err)
		}
	}
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			log.Printf("Failed to close Redis client: %v", err)
		}
	}
	if b.db != nil {
		database.Close(b.db)
	}
}

func main() {
	config, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	conns, err := openBackends(ctx, config)
	if err != nil {
		log.Fatalf("failed to initialize backends: %v", err)
	}
	defer conns.close()

	store, err := cache.NewCache(conns.redis)
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	patients, appointments, err := newStores(config, conns, store)
	if err != nil {
		log.Fatalf("failed to initialize stores: %v", err)
	}

	mailer := utils.NewMailer(config.SMTP)

	auth, err := newAuthProvider(ctx, config, conns, store, mailer)
	if err != nil {
		log.Fatalf("failed to initialize auth backend: %v", err)
	}

	doctors := services.NewDoctorService(repositories.NewDoctorRepository(models.SeedDoctors()))
	booking := services.NewBookingService(
		doctors,
		appointments,
		patients,
		services.NewMockPaymentGateway(config.PaymentDelay),
		store,
		mailer,
		config.Location,
	)

	svc := routes.Services{
		Auth:          auth,
		Registration:  services.NewRegistrationService(auth, patients),
		Patients:      services.NewPatientService(patients),
		Doctors:       doctors,
		Booking:       booking,
		Consultations: services.NewConsultationService(booking, services.NewMockVideoGateway(config.ConnectDelay, config.PublicBaseURL), store, store),
		Directory: services.NewDirectoryService(
			repositories.NewBloodBankRepository(models.SeedBloodBanks(time.Now().In(config.Location))),
			repositories.NewLabCenterRepository(models.SeedLabCenters()),
		),
		Content: services.NewContentService(repositories.NewContentRepository()),
		Export:  services.NewExportService(appointments),
	}

	reminders := services.NewReminderService(appointments, patients, mailer, config.Location)
	if err := reminders.Start(config.ReminderAt); err != nil {
		log.Fatalf("failed to start reminders: %v", err)
	}
	defer reminders.Stop()

	go database.MonitorRedisPool(ctx, conns.redis, 5*time.Minute)

	health := handlers.NewHealthHandler(healthChecks(conns), config.Env, version)
	handler := routes.SetupRoutes(config, svc, health)

	srv := &http.Server{
		Addr:           config.HTTPAddr,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s (store=%s, auth=%s)", config.HTTPAddr, config.StoreBackend, config.AuthBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown failed: %+v", err)
	}

	stop()
	wg.Wait()
	log.Println("Server exited gracefully")
}

func openBackends(ctx context.Context, cfg *config.AppConfig) (*backends, error) {
	conns := &backends{}

	client, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	conns.redis = client

	needsDB := cfg.StoreBackend == config.StorePostgres ||
		(cfg.AuthBackend == config.AuthLocal && cfg.StoreBackend != config.StoreMemory)
	if needsDB {
		db, err := database.InitDB(ctx, cfg.DBURL, cfg.IsDevelopment())
		if err != nil {
			conns.close()
			return nil, err
		}
		conns.db = db
	}

	if cfg.StoreBackend == config.StoreFirestore || cfg.AuthBackend == config.AuthFirebase {
		app, err := database.InitFirebase(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		if err != nil {
			conns.close()
			return nil, err
		}
		conns.firebase = app
	}
	if cfg.StoreBackend == config.StoreFirestore {
		client, err := database.NewFirestoreClient(ctx, conns.firebase)
		if err != nil {
			conns.close()
			return nil, err
		}
		conns.firestore = client
	}
	return conns, nil
}

func newStores(cfg *config.AppConfig, conns *backends, store *cache.Cache) (repositories.PatientRepository, repositories.AppointmentRepository, error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		return repositories.NewPatientRepository(conns.db, store, store),
			repositories.NewAppointmentRepository(conns.db, store), nil
	case config.StoreFirestore:
		return repositories.NewFirestorePatientRepository(conns.firestore),
			repositories.NewFirestoreAppointmentRepository(conns.firestore), nil
	case config.StoreMemory:
		log.Println("Using in-memory patient store, data is lost on restart")
		return repositories.NewMemoryPatientRepository(), repositories.NewMemoryAppointmentRepository(), nil
	}
	return nil, nil, errors.New("unknown store backend " + cfg.StoreBackend)
}

func newAuthProvider(ctx context.Context, cfg *config.AppConfig, conns *backends, store *cache.Cache, mailer utils.Mailer) (services.AuthProvider, error) {
	if cfg.AuthBackend == config.AuthFirebase {
		client, err := database.NewAuthClient(ctx, conns.firebase)
		if err != nil {
			return nil, err
		}
		return services.NewFirebaseAuth(client, mailer), nil
	}

	tokens, err := utils.NewTokenMaker(cfg.SymmetricKey)
	if err != nil {
		return nil, err
	}
	users := repositories.NewMemoryUserRepository()
	if conns.db != nil {
		users = repositories.NewUserRepository(conns.db)
	}
	return services.NewLocalAuth(users, tokens, store, store, mailer, cfg.PublicBaseURL), nil
}

func healthChecks(conns *backends) map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"redis": func(ctx context.Context) error {
			return conns.redis.Ping(ctx).Err()
		},
	}
	if conns.db != nil {
		checks["postgres"] = func(ctx context.Context) error {
			return database.Ping(ctx, conns.db)
		}
	}
	if conns.firestore != nil {
		checks["firestore"] = func(ctx context.Context) error {
			iter := conns.firestore.Collection("patients").Limit(1).Documents(ctx)
			defer iter.Stop()
			if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
				return err
			}
			return nil
		}
	}
	return checks
}
