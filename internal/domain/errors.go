package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
// Cada sentinel es un "kind": los errores estructurados de abajo responden a errors.Is con él.
var (
	ErrValidation          = errors.New("entrada inválida")
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidTransition   = errors.New("transición de estado inválida")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrProductsNotFound    = errors.New("productos no encontrados")
	ErrProductsUnavailable = errors.New("algunos productos no están disponibles")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrPersistence         = errors.New("error de persistencia")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)

// Códigos cortos verificables por máquina.
const (
	KindValidation          = "VALIDATION"
	KindNotFound            = "NOT_FOUND"
	KindInvalidTransition   = "INVALID_TRANSITION"
	KindInsufficientStock   = "INSUFFICIENT_STOCK"
	KindProductsNotFound    = "PRODUCTS_NOT_FOUND"
	KindProductsUnavailable = "PRODUCTS_UNAVAILABLE"
	KindConflict            = "CONFLICT"
	KindPersistence         = "PERSISTENCE"
	KindUnauthorized        = "UNAUTHORIZED"
	KindForbidden           = "FORBIDDEN"
	KindInternal            = "INTERNAL"
)

var kinds = []struct {
	err  error
	code string
}{
	{ErrValidation, KindValidation},
	{ErrNotFound, KindNotFound},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrInsufficientStock, KindInsufficientStock},
	{ErrProductsNotFound, KindProductsNotFound},
	{ErrProductsUnavailable, KindProductsUnavailable},
	{ErrConflict, KindConflict},
	{ErrPersistence, KindPersistence},
	{ErrUnauthorized, KindUnauthorized},
	{ErrForbidden, KindForbidden},
}

// KindOf devuelve el código del primer kind que coincide con err; INTERNAL si ninguno.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return KindInternal
}

// ValidationError describe un campo inválido detectado antes de tocar la persistencia.
type ValidationError struct {
	Field  string
	Reason string
}

// Validation construye un ValidationError.
func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InvalidTransitionError lleva el estado actual y el solicitado.
type InvalidTransitionError struct {
	Current   string
	Requested string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición de estado inválida: %s -> %s", e.Current, e.Requested)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// InsufficientStockError salida mayor que la existencia actual.
type InsufficientStockError struct {
	ItemID    string
	Available string
	Requested string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %s, solicitado %s", e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// ProductsNotFoundError ids de producto que no resolvieron en el catálogo.
type ProductsNotFoundError struct {
	IDs []string
}

func (e *ProductsNotFoundError) Error() string {
	if len(e.IDs) == 0 {
		return ErrProductsNotFound.Error()
	}
	return ErrProductsNotFound.Error() + ": " + strings.Join(e.IDs, ", ")
}

func (e *ProductsNotFoundError) Is(target error) bool { return target == ErrProductsNotFound }

// ProductsUnavailableError nombra los productos que bloquean la creación del pedido.
type ProductsUnavailableError struct {
	Products []string
}

func (e *ProductsUnavailableError) Error() string {
	return ErrProductsUnavailable.Error() + ": " + strings.Join(e.Products, ", ")
}

func (e *ProductsUnavailableError) Is(target error) bool { return target == ErrProductsUnavailable }

// PersistenceError envuelve un error del almacén no clasificado de otra forma.
// Unwrap expone la causa original; el texto de la consulta no sale de la capa de infraestructura.
type PersistenceError struct {
	Op  string
	Err error
}

// Persistence envuelve err como fallo de persistencia de la operación op.
// Si err ya tiene un kind de dominio (p.ej. ErrConflict) se devuelve sin cambios.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindInternal {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
