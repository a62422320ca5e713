package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/softcare/softcare-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		// User routes
		r.Post("/users", handlers.CreateUser)
		r.Get("/users", handlers.GetUsers)
		r.Get("/users/{id}", handlers.GetUserByID)
		r.Put("/users/{id}", handlers.UpdateUser)
		r.Delete("/users/{id}", handlers.DeleteUser)
		r.Get("/users/email/{email}", handlers.GetUserByEmail)
		r.Get("/users/role/{role}", handlers.GetUsersByRole)
		r.Post("/users/login", handlers.Login)
		r.Post("/users/{id}/logout", handlers.Logout)
		r.Post("/users/{id}/change-password", handlers.ChangePassword)

		// Emotional diary routes
		r.Post("/emotional-diary", handlers.CreateDiaryEntry)
		r.Get("/emotional-diary/{id}", handlers.GetDiaryEntryByID)
		r.Put("/emotional-diary/{id}", handlers.UpdateDiaryEntry)
		r.Delete("/emotional-diary/{id}", handlers.DeleteDiaryEntry)
		r.Get("/emotional-diary/low-mood", handlers.GetLowMoodEntries)
		r.Get("/emotional-diary/high-stress", handlers.GetHighStressEntries)
		r.Get("/emotional-diary/user/{userId}", handlers.GetDiaryEntriesByUser)
		r.Get("/emotional-diary/user/{userId}/date/{date}", handlers.GetDiaryEntryByUserAndDate)
		r.Get("/emotional-diary/user/{userId}/latest", handlers.GetLatestDiaryEntry)
		r.Get("/emotional-diary/user/{userId}/range", handlers.GetDiaryEntriesInRange)
		r.Get("/emotional-diary/user/{userId}/average-wellness", handlers.GetAverageWellnessScore)
		r.Get("/emotional-diary/user/{userId}/today", handlers.HasEntryForToday)
		r.Get("/emotional-diary/user/{userId}/statistics", handlers.GetDiaryStatistics)

		// Psychosocial assessment routes
		r.Post("/psychosocial-assessments", handlers.CreateAssessment)
		r.Get("/psychosocial-assessments/{id}", handlers.GetAssessmentByID)
		r.Put("/psychosocial-assessments/{id}", handlers.UpdateAssessment)
		r.Delete("/psychosocial-assessments/{id}", handlers.DeleteAssessment)
		r.Get("/psychosocial-assessments/high-risk", handlers.GetHighRiskAssessments)
		r.Get("/psychosocial-assessments/risk-level/{level}", handlers.GetAssessmentsByRiskLevel)
		r.Get("/psychosocial-assessments/statistics", handlers.GetAssessmentStatistics)
		r.Get("/psychosocial-assessments/user/{userId}", handlers.GetAssessmentsByUser)
		r.Get("/psychosocial-assessments/user/{userId}/latest", handlers.GetLatestAssessment)
		r.Get("/psychosocial-assessments/user/{userId}/date-range", handlers.GetAssessmentsInRange)

		// Support channel routes
		r.Post("/support-channels", handlers.CreateSupportChannel)
		r.Get("/support-channels", handlers.GetSupportChannels)
		r.Get("/support-channels/search/name", handlers.SearchChannelsByName)
		r.Get("/support-channels/search/description", handlers.SearchChannelsByDescription)
		r.Get("/support-channels/with-phone", handlers.GetChannelsWithPhone)
		r.Get("/support-channels/with-email", handlers.GetChannelsWithEmail)
		r.Get("/support-channels/with-website", handlers.GetChannelsWithWebsite)
		r.Get("/support-channels/{id}", handlers.GetSupportChannelByID)
		r.Put("/support-channels/{id}", handlers.UpdateSupportChannel)
		r.Delete("/support-channels/{id}", handlers.DeleteSupportChannel)
		r.Post("/support-channels/{id}/access", handlers.RecordChannelAccess)

		// Admin routes
		r.Put("/admin/unblock-ip", handlers.UnblockIP)

		// Audit log routes (read-only)
		r.Get("/audit-logs/user/{userId}", handlers.GetAuditLogsByUser)
		r.Get("/audit-logs/user/{userId}/recent", handlers.GetRecentAuditLogsByUser)
		r.Get("/audit-logs/user/{userId}/range", handlers.GetAuditLogsByUserInRange)
		r.Get("/audit-logs/event-type/{eventType}", handlers.GetAuditLogsByEventType)
		r.Get("/audit-logs/event-type/{eventType}/count", handlers.GetAuditEventTypeCount)
		r.Get("/audit-logs/severity/{severity}", handlers.GetAuditLogsBySeverity)
		r.Get("/audit-logs/critical", handlers.GetCriticalAuditLogs)
		r.Get("/audit-logs/failed", handlers.GetFailedAuditOperations)
		r.Get("/audit-logs/failed/count", handlers.GetFailedOperationsCount)
	})
}
