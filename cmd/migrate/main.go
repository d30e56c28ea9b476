package main

import (
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/kvmarcenaria/marcenaria-api/pkg/config"
)

// Runner de migrações goose. Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
//	go run ./cmd/migrate status
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("aviso: .env não encontrado, usando só variáveis de ambiente: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("carregar configuração: %v", err)
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "diretório com os arquivos de migração")
	flag.Parse()

	db, err := goose.OpenDBWithDriver("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("goose: conectar ao banco: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: fechar conexão: %v", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s ok\n", command)
}
