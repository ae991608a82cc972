// Package docs registra en swag la especificación OpenAPI servida en /swagger.
// docs.go sale de las anotaciones de cmd/api y de los handlers; no se edita a mano.
package docs

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init --dir ../../cmd/api,../domain/forms,../domain/concentration --generalInfo main.go --output . --outputTypes go --parseInternal
