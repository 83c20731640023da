package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tarefa-planner/internal/calendar"
	"tarefa-planner/internal/config"
	"tarefa-planner/internal/holiday"
	"tarefa-planner/internal/kvstore"
	"tarefa-planner/internal/notify"
	"tarefa-planner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var store kvstore.Store
	switch cfg.StorageBackend {
	case "sqlite":
		db, err := kvstore.NewSQLite(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()
		store = db
	default:
		store = kvstore.NewDiskv(cfg.DatabasePath)
	}

	categoriaSvc := service.NewCategoriaService(store)
	if err := categoriaSvc.Init(ctx); err != nil {
		log.Fatalf("seed categorias: %v", err)
	}
	projetoSvc := service.NewProjetoService(store, categoriaSvc)
	tarefaSvc := service.NewTarefaService(store, projetoSvc)

	var gateway notify.Gateway = notify.Disabled{}
	var local *notify.Local
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		sender, err := notify.NewTelegramSender(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		local = notify.NewLocal(sender)
		gateway = local
	} else {
		log.Println("[info] telegram não configurado, lembretes desativados")
	}

	reminderSvc := service.NewReminderService(tarefaSvc, gateway)
	if err := reminderSvc.Reschedule(ctx); err != nil {
		log.Printf("[warn] reconstruir lembretes: %v", err)
	}

	holidayClient := holiday.NewClient(cfg.HolidayBaseURL, cfg.HolidayCountry)
	view := calendar.NewView(tarefaSvc, holidayClient)
	ano, mes := view.Atual()
	semanas := view.Gerar(ctx)
	log.Printf("[info] calendário %04d-%02d gerado (%d semanas)", ano, int(mes), len(semanas))

	scheduler := service.NewScheduler(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.RebuildTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := reminderSvc.Reschedule(jobCtx); err != nil {
			log.Printf("[warn] reconstruir lembretes: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule rebuild: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Planner daemon started.")
	<-ctx.Done()
	if local != nil {
		local.Stop()
	}
	log.Println("Shutdown complete.")
}
