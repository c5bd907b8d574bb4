// internal/types/types.go
package types

// EntityID: идентификатор сущности ECS. Ноль не выдаётся.
type EntityID uint64
