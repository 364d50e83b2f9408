package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status string `json:"status" example:"OK" doc:"Servisin sağlık durumu"`
	Uptime string `json:"uptime,omitempty" doc:"Sunucunun ayakta kalma süresi"`
}
