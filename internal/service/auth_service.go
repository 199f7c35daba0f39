package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IsmaGarcia115/tienda-xprin/internal/forms"
	"github.com/IsmaGarcia115/tienda-xprin/internal/model"
	"github.com/IsmaGarcia115/tienda-xprin/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailRegistrado signals a registration attempt with an email that is
	// already taken. No record is written.
	ErrEmailRegistrado = errors.New("este email ya está registrado")

	// ErrCredenciales covers both unknown-email and wrong-password logins so
	// that responses never reveal which field was wrong.
	ErrCredenciales = errors.New("email o contraseña incorrectos")
)

// Principal is the minimal authenticated identity handed to the session layer
// after a successful login and rehydrated from the store on each request.
type Principal struct {
	ID     string
	Nombre string
	Email  string
}

type AuthService interface {
	Registrar(ctx context.Context, f *forms.RegistroForm) error
	Login(ctx context.Context, f *forms.LoginForm) (*Principal, error)
	// PrincipalPorID rehydrates the session principal. Malformed or stale ids
	// come back as repository.ErrNoEncontrado, never as a fault.
	PrincipalPorID(ctx context.Context, id string) (*Principal, error)
}

type authService struct {
	repo repository.UsuarioRepository
}

func NewAuthService(repo repository.UsuarioRepository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Registrar(ctx context.Context, f *forms.RegistroForm) error {
	_, err := s.repo.FindByEmail(ctx, f.Email)
	if err == nil {
		return ErrEmailRegistrado
	}
	if !errors.Is(err, repository.ErrNoEncontrado) {
		return fmt.Errorf("registro: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), 12)
	if err != nil {
		return fmt.Errorf("registro: %w", err)
	}
	u := &model.Usuario{
		Nombre:   f.Nombre,
		Email:    f.Email,
		Password: string(hash),
	}
	if _, err := s.repo.Insert(ctx, u); err != nil {
		return fmt.Errorf("registro: %w", err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, f *forms.LoginForm) (*Principal, error) {
	u, err := s.repo.FindByEmail(ctx, f.Email)
	if errors.Is(err, repository.ErrNoEncontrado) {
		return nil, ErrCredenciales
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(f.Password)); err != nil {
		return nil, ErrCredenciales
	}
	return &Principal{ID: u.ID.Hex(), Nombre: u.Nombre, Email: u.Email}, nil
}

func (s *authService) PrincipalPorID(ctx context.Context, id string) (*Principal, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Principal{ID: u.ID.Hex(), Nombre: u.Nombre, Email: u.Email}, nil
}
