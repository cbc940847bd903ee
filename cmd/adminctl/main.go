package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xela07ax/mrp-console/internal/domain"
	"github.com/xela07ax/mrp-console/internal/infra"
	"github.com/xela07ax/mrp-console/internal/repository/postgres"
	"github.com/xela07ax/mrp-console/internal/service"
	"golang.org/x/term"
)

// adminctl заводит первого администратора, когда API еще нечем
// аутентифицировать: register всегда откатывает роль в User,
// а админские роуты без админа недостижимы.
//
//	adminctl -name root_admin -email admin@example.com
//	adminctl -promote -email user@example.com
func main() {
	name := flag.String("name", "", "user name (required unless -promote)")
	email := flag.String("email", "", "user email (required)")
	address := flag.String("address", "", "user address")
	promote := flag.Bool("promote", false, "promote an existing user to Admin instead of creating one")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(ctx, cfg.Database.URL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	users := service.NewUserService(repo, repo, cfg.Auth.BcryptCost)

	if *promote {
		if err := promoteUser(ctx, repo, users, *email); err != nil {
			log.Fatalf("promote: %v", err)
		}
		fmt.Printf("user %s promoted to %s\n", *email, domain.RoleAdmin)
		return
	}

	if *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	password, err := readPassword()
	if err != nil {
		log.Fatalf("password: %v", err)
	}

	user, err := users.Create(ctx, &domain.CreateUser{
		Name:     *name,
		Email:    *email,
		Password: password,
		Address:  *address,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("create: %v", err)
	}
	fmt.Printf("admin %s (%s) created, id=%s\n", user.Name, user.Email, user.ID)
}

func promoteUser(ctx context.Context, repo *postgres.Repo, users *service.UserService, email string) error {
	current, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	role := domain.RoleAdmin
	_, err = users.Update(ctx, current.ID, &domain.UpdateUser{Role: &role})
	return err
}

// readPassword читает пароль без эха; дважды, с проверкой совпадения.
func readPassword() (string, error) {
	fmt.Print("password: ")
	first, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}

	fmt.Print("repeat: ")
	second, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(first), nil
}
