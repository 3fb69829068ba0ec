package main

import "antifraud-system/internal/bootstrap"

// @title AntiFraud API
// @version 1.0
// @description Сервис проверки транзакций на мошенничество
// @host localhost:8080
// @BasePath /api/v1
func main() { bootstrap.StartAntifraudService() }
