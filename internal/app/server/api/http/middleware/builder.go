package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container - huma.Middlewares üzerine küçük bir toplama yardımcısı
type Container struct {
	huma.Middlewares
}

// NewContainer, boş bir mid katmanı kabı oluşturur
func NewContainer() *Container {
	return &Container{
		Middlewares: make(huma.Middlewares, 0),
	}
}

// Add, kaba tek bir mid katmanı ekler
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.Middlewares = append(mc.Middlewares, middleware)
}

// GetAllAndClear, biriken katmanları döndürüp iç listeyi sıfırlar
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = nil
	return result
}
