package server

import (
	"careerflow/internal/mailer"
	"careerflow/internal/middleware"
	"careerflow/internal/service"
)

func (s *Server) authSvc() *service.AuthService {
	if s.authService == nil {
		s.authService = service.NewAuthService(s.userRepo, s.redis, s.config)
	}
	return s.authService
}

func (s *Server) jobSvc() *service.JobService {
	if s.jobService == nil {
		s.jobService = service.NewJobService(s.jobRepo)
	}
	return s.jobService
}

func (s *Server) applicationSvc() *service.ApplicationService {
	if s.applicationService == nil {
		mail := s.mailer
		if mail == nil {
			mail = mailer.NewLogMailer(middleware.Logger)
		}
		var events service.EventPublisher
		if s.notifier != nil {
			events = s.notifier
		}
		s.applicationService = service.NewApplicationService(
			s.applicationRepo,
			s.jobRepo,
			s.userRepo,
			s.notificationRepo,
			mail,
			events,
		)
	}
	return s.applicationService
}

func (s *Server) notificationSvc() *service.NotificationService {
	if s.notificationService == nil {
		s.notificationService = service.NewNotificationService(s.notificationRepo)
	}
	return s.notificationService
}

func (s *Server) profileSvc() *service.ProfileService {
	if s.profileService == nil {
		s.profileService = service.NewProfileService(s.userRepo, s.resumes)
	}
	return s.profileService
}
