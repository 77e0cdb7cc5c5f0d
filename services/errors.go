package services

import "errors"

// Failure kinds the controllers translate into HTTP statuses. They are
// never collapsed: callers can always tell which rule rejected them.
var (
	ErrMissingDayTime  = errors.New("dia e horário são obrigatórios")
	ErrInvalidCode     = errors.New("código inválido ou já usado")
	ErrExpiredCode     = errors.New("código expirado")
	ErrDeviceNotFound  = errors.New("dispositivo não encontrado")
	ErrInvalidLogin    = errors.New("email ou senha inválidos")
	ErrEmailRegistered = errors.New("email já cadastrado")
)
