package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/edunumeric/quiz-ia-platform/internal/config"
	"github.com/edunumeric/quiz-ia-platform/internal/db/repository"
	"github.com/edunumeric/quiz-ia-platform/internal/quiz"
)

type seedQuestion struct {
	prompt        string
	options       []string
	correctAnswer int
	explanation   string
	points        int
}

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load("configs/.env")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	quizRepo := repository.NewQuizRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)

	count, err := quizRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check existing quizzes")
	}
	if count > 0 {
		log.Info().Int("quizzes", count).Msg("demo data already present, nothing to do")
		return
	}

	if err := seedQuiz(ctx, quizRepo, questionRepo, quiz.Quiz{
		ID:          uuid.New(),
		Title:       "IA et Inspection Pédagogique",
		Description: "Évaluez vos connaissances sur l'utilisation de l'IA dans l'inspection pédagogique",
		Category:    quiz.CategoryInspector,
		Difficulty:  quiz.DifficultyIntermediaire,
		IsActive:    true,
	}, inspectorQuestions()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed inspector quiz")
	}

	if err := seedQuiz(ctx, quizRepo, questionRepo, quiz.Quiz{
		ID:          uuid.New(),
		Title:       "IA et Gestion d'Établissement",
		Description: "Testez vos connaissances sur l'intégration de l'IA dans la gestion d'établissement scolaire",
		Category:    quiz.CategoryChefEtablissement,
		Difficulty:  quiz.DifficultyIntermediaire,
		IsActive:    true,
	}, chefQuestions()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed chef d'établissement quiz")
	}

	log.Info().Msg("demo data seeded")
}

func seedQuiz(ctx context.Context, quizzes *repository.QuizRepository, questions *repository.QuestionRepository, q quiz.Quiz, seeds []seedQuestion) error {
	if err := quizzes.Create(ctx, &q); err != nil {
		return fmt.Errorf("insert quiz %q: %w", q.Title, err)
	}
	for _, s := range seeds {
		question := quiz.Question{
			ID:            uuid.New(),
			QuizID:        q.ID,
			Prompt:        s.prompt,
			Options:       s.options,
			CorrectAnswer: s.correctAnswer,
			Explanation:   s.explanation,
			Points:        s.points,
		}
		if err := questions.Create(ctx, &question); err != nil {
			return fmt.Errorf("insert question for %q: %w", q.Title, err)
		}
	}
	log.Info().Str("quiz", q.Title).Int("questions", len(seeds)).Msg("quiz seeded")
	return nil
}

func inspectorQuestions() []seedQuestion {
	return []seedQuestion{
		{
			prompt: "Quel est le principal avantage de l'IA dans l'analyse des pratiques pédagogiques ?",
			options: []string{
				"Remplacer complètement l'inspecteur",
				"Analyser de grandes quantités de données rapidement",
				"Éliminer le besoin d'observation en classe",
				"Automatiser les rapports d'inspection",
			},
			correctAnswer: 1,
			explanation:   "L'IA excelle dans l'analyse rapide de grandes quantités de données, permettant aux inspecteurs de détecter des tendances et patterns.",
			points:        10,
		},
		{
			prompt: "Dans le contexte de l'inspection, l'IA peut aider à :",
			options: []string{
				"Personnaliser les formations des enseignants",
				"Prédire les résultats des élèves",
				"Identifier les besoins d'accompagnement",
				"Toutes les réponses ci-dessus",
			},
			correctAnswer: 3,
			explanation:   "L'IA peut effectivement contribuer à tous ces aspects de l'inspection pédagogique.",
			points:        15,
		},
		{
			prompt: "Quelle précaution éthique est essentielle lors de l'utilisation d'IA en inspection ?",
			options: []string{
				"Utiliser uniquement des algorithmes propriétaires",
				"Garantir la transparence et l'explicabilité des décisions",
				"Automatiser toutes les évaluations",
				"Éviter toute intervention humaine",
			},
			correctAnswer: 1,
			explanation:   "La transparence et l'explicabilité sont cruciales pour maintenir la confiance et l'équité dans le processus d'inspection.",
			points:        20,
		},
	}
}

func chefQuestions() []seedQuestion {
	return []seedQuestion{
		{
			prompt: "Comment l'IA peut-elle améliorer la gestion des emplois du temps ?",
			options: []string{
				"En créant des emplois du temps parfaits automatiquement",
				"En optimisant les contraintes et ressources disponibles",
				"En éliminant le besoin de planification",
				"En remplaçant les logiciels existants",
			},
			correctAnswer: 1,
			explanation:   "L'IA peut optimiser la répartition des ressources en tenant compte de multiples contraintes simultanément.",
			points:        10,
		},
		{
			prompt: "Dans la gestion des ressources humaines, l'IA peut aider à :",
			options: []string{
				"Recruter automatiquement les enseignants",
				"Analyser les besoins en formation du personnel",
				"Remplacer les entretiens individuels",
				"Éliminer les conflits",
			},
			correctAnswer: 1,
			explanation:   "L'IA peut analyser les données de performance et identifier les besoins de formation personnalisés.",
			points:        15,
		},
		{
			prompt: "Quel est un risque majeur de l'IA dans la gestion d'établissement ?",
			options: []string{
				"La réduction des coûts",
				"L'amélioration de l'efficacité",
				"La déshumanisation des relations",
				"L'automatisation des tâches",
			},
			correctAnswer: 2,
			explanation:   "Le principal risque est de perdre l'aspect humain essentiel dans la gestion d'un établissement scolaire.",
			points:        20,
		},
	}
}
