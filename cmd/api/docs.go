package main

// @title           AutoShop API
// @version         1.0
// @description     API de gestão de estoque de veículos multi-loja, com vitrine pública e consulta à tabela FIPE

// @contact.name   Suporte AutoShop
// @contact.email  suporte@autoshop.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
