package sched

import (
	"errors"
	"testing"
)

type lifecycleTask struct {
	name    string
	log     *[]string
	initErr error
}

func (t *lifecycleTask) Init() error {
	*t.log = append(*t.log, "init "+t.name)
	return t.initErr
}

func (t *lifecycleTask) Handle() {}

func (t *lifecycleTask) Deinit() {
	*t.log = append(*t.log, "deinit "+t.name)
}

func TestRegistryBounds(t *testing.T) {
	if _, err := NewRegistry(0); err == nil {
		t.Fatal("expected error for 0 slots")
	}
	if _, err := NewRegistry(MaxSlots + 1); err == nil {
		t.Fatal("expected error above MaxSlots")
	}
	reg, err := NewRegistry(4)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if reg.Len() != 4 {
		t.Fatalf("expected 4 slots, got %d", reg.Len())
	}
}

func TestRegistryBind(t *testing.T) {
	reg, _ := NewRegistry(4)
	task := &countTask{}

	if err := reg.Bind(-1, task); err == nil {
		t.Fatal("expected error for negative slot")
	}
	if err := reg.Bind(4, task); err == nil {
		t.Fatal("expected error for out-of-range slot")
	}
	if err := reg.Bind(1, nil); err == nil {
		t.Fatal("expected error for nil task")
	}
	if err := reg.Bind(1, task); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := reg.Bind(1, task); err == nil {
		t.Fatal("expected error for double bind")
	}
	if reg.Task(1) != task {
		t.Fatal("expected bound task back")
	}
	if reg.Task(0) != nil {
		t.Fatal("expected nil for unbound slot")
	}
	if reg.Task(9) != nil {
		t.Fatal("expected nil for out-of-range slot")
	}
}

func TestRegistrySealedAfterInit(t *testing.T) {
	reg, _ := NewRegistry(2)
	if err := reg.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := reg.Bind(0, &countTask{}); err == nil {
		t.Fatal("expected bind to fail after Init")
	}
}

func TestRegistryInitOrderAndFailure(t *testing.T) {
	var log []string
	reg, _ := NewRegistry(4)
	boom := errors.New("no hardware")

	reg.Bind(0, &lifecycleTask{name: "a", log: &log})
	reg.Bind(2, &lifecycleTask{name: "b", log: &log, initErr: boom})
	reg.Bind(3, &lifecycleTask{name: "c", log: &log})

	err := reg.Init()
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped init error, got %v", err)
	}
	if len(log) != 2 || log[0] != "init a" || log[1] != "init b" {
		t.Fatalf("unexpected init order: %v", log)
	}
}

func TestRegistryDeinitReverseOrder(t *testing.T) {
	var log []string
	reg, _ := NewRegistry(4)

	reg.Bind(0, &lifecycleTask{name: "a", log: &log})
	reg.Bind(1, &countTask{}) // no Deinit, must be skipped quietly
	reg.Bind(3, &lifecycleTask{name: "c", log: &log})

	if err := reg.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	log = log[:0]
	reg.Deinit()

	if len(log) != 2 || log[0] != "deinit c" || log[1] != "deinit a" {
		t.Fatalf("unexpected deinit order: %v", log)
	}
}
