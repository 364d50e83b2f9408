package searchlog

import "context"

// Repository, arama günlüğünü kalıcılaştıran katmandır. List her zaman en
// yeni kayıt başta olacak şekilde dönmelidir.
type Repository interface {
	Append(ctx context.Context, rec *Record) error
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
