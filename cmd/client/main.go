package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"couponscan/internal/config"
	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
	"couponscan/internal/services"
	"couponscan/internal/utils"
	"couponscan/pkg/backend"
	"couponscan/pkg/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], nil, os.Stdin, os.Stdout))
}

// app holds the wired services for one invocation.
type app struct {
	cfg        *config.Config
	repo       interfaces.SessionRepository
	sessions   services.SessionService
	auth       services.AuthService
	redemption services.RedemptionService
	images     services.ImageService

	in  *bufio.Reader
	out io.Writer
}

func newApp(cfg *config.Config, log *logger.Logger, in io.Reader, out io.Writer) (*app, error) {
	repo, err := openSessionRepository(cfg)
	if err != nil {
		return nil, err
	}

	sessions := services.NewSessionService(repo, time.Now, log)
	client := backend.NewClient(backend.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Token:     sessions.Token,
	}, log)
	coupons := services.NewCouponService(client, log)

	return &app{
		cfg:        cfg,
		repo:       repo,
		sessions:   sessions,
		auth:       services.NewAuthService(client, sessions, cfg.App.Variant, log),
		redemption: services.NewRedemptionService(coupons, client, sessions, time.Now, cfg.App.Timezone, log),
		images:     services.NewImageService(client, cfg.Upload, log),
		in:         bufio.NewReader(in),
		out:        out,
	}, nil
}

// run parses args, executes one command and returns the exit code. environ
// replaces the process environment when non-nil.
func run(ctx context.Context, args []string, environ map[string]string, in io.Reader, out io.Writer) int {
	fs := flag.NewFlagSet("couponscan", flag.ContinueOnError)
	fs.SetOutput(out)
	cmd := fs.String("cmd", "status", "Command to run: login, register, logout, status, scan")
	user := fs.String("user", "", "Username or email for login")
	password := fs.String("password", "", "Password for login or register")
	name := fs.String("name", "", "Full name for register")
	email := fs.String("email", "", "Email for register")
	phone := fs.String("phone", "", "Phone number for register")
	code := fs.String("code", "", "Scanned coupon code")
	amount := fs.String("amount", "", "Bill amount; prompted for when empty")
	bill := fs.String("bill", "", "Path to a bill image to attach")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadFrom(environ)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return 1
	}
	log, err := logger.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return 1
	}

	a, err := newApp(cfg, log, in, out)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return 1
	}
	defer a.repo.Close()

	switch *cmd {
	case "login":
		err = a.login(ctx, *user, *password)
	case "register":
		err = a.register(ctx, &models.RegisterRequest{Name: *name, Email: *email, PhoneNo: *phone, Password: *password})
	case "logout":
		a.logout(ctx)
	case "status":
		a.status(ctx)
	case "scan":
		err = a.scan(ctx, *code, *amount, *bill)
	default:
		fmt.Fprintln(out, "Unknown command:", *cmd)
		return 2
	}

	if err != nil {
		fmt.Fprintln(out, services.UserMessage(err))
		return 1
	}
	return 0
}

func (a *app) login(ctx context.Context, user, password string) error {
	session, err := a.auth.Login(ctx, user, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", displayName(session), session.Role)
	return nil
}

func (a *app) register(ctx context.Context, req *models.RegisterRequest) error {
	if err := a.auth.Register(ctx, req); err != nil {
		return err
	}
	if req.Status == models.AccountPending {
		fmt.Fprintln(a.out, "Registration received. Your account is waiting for approval.")
	} else {
		fmt.Fprintln(a.out, "Registration successful. You can log in now.")
	}
	return nil
}

func (a *app) logout(ctx context.Context) {
	if a.auth.Logout(ctx).Removed {
		fmt.Fprintln(a.out, "Logged out")
		return
	}
	fmt.Fprintln(a.out, "Could not remove the stored session")
}

func (a *app) status(ctx context.Context) {
	result := a.sessions.CheckValidity(ctx)
	if !result.Valid {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	s := result.Session
	fmt.Fprintf(a.out, "Logged in as %s (%s, %s) until %s\n",
		displayName(s), s.Role, s.Status,
		utils.FormatTime(utils.UnixToTime(s.ExpiresAt), a.cfg.App.Timezone))
}

// scan runs one redemption flow. A terminal coupon status is reported and
// is not an error.
func (a *app) scan(ctx context.Context, code, amount, bill string) error {
	if _, err := a.sessions.RequireRole(ctx, models.RoleBusinessOwner, models.RoleAdmin); err != nil {
		return err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		line, err := a.prompt("Coupon code: ")
		if err != nil {
			return err
		}
		code = line
	}

	flow := a.redemption.NewFlow()
	defer flow.Dismiss()

	coupon, err := flow.Scan(ctx, code)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, coupon.Message())
	if coupon.Status.Terminal() {
		return nil
	}

	if err := flow.BeginAmountEntry(); err != nil {
		return err
	}
	if amount == "" {
		if amount, err = a.prompt("Bill amount: "); err != nil {
			return err
		}
	}
	if err := flow.EnterAmount(amount); err != nil {
		return err
	}

	if bill != "" {
		link, err := a.uploadBill(ctx, bill)
		if err != nil {
			return err
		}
		if err := flow.AttachBillImage(link); err != nil {
			return err
		}
	}

	record, err := flow.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Coupon redeemed. Discount %s at %s\n",
		utils.FormatCurrency(record.Discount, a.cfg.App.Currency), record.DateTime)
	return nil
}

func (a *app) uploadBill(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open bill image: %w", err)
	}
	defer f.Close()
	return a.images.UploadBillImage(ctx, path, f)
}

func (a *app) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func displayName(s *models.Session) string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}
