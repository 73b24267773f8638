package models

type Exercise struct {
	ID   int64  `json:"ejercicio_id"`
	Name string `json:"nombre"`
	Type string `json:"tipo"`
}

type Equipment struct {
	ID       int64  `json:"equipo_id"`
	Name     string `json:"nombre"`
	Type     string `json:"tipo"`
	Location string `json:"ubicacion"`
}
