package service

import (
	"postboard/internal/config"
	"postboard/internal/repository"
)

type Service struct {
	Token  TokenService
	Auth   AuthService
	Post   PostService
	Tables TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	tokens := NewTokenService(cfg)

	return &Service{
		Token:  tokens,
		Auth:   NewAuthService(rep.User, tokens, cfg),
		Post:   NewPostService(rep.Post),
		Tables: NewTablesService(rep.Tables),
	}
}
