package machine_test

import (
	"fmt"

	"github.com/dmitrymomot/reducerkit/pkg/machine"
)

type Phase string

const (
	Idle    Phase = "IDLE"
	Running Phase = "RUNNING"
)

type Job struct {
	Phase Phase
	Runs  int
}

func ExampleCompose() {
	reduce := machine.MustCompose(
		machine.Pointer(func(j *Job) Phase { return j.Phase }),
		machine.WithStatus(Idle, func(j *Job, cmd string) (*Job, error) {
			if cmd != "start" {
				return j, nil
			}
			next := Job{Phase: Running}
			if j != nil {
				next.Runs = j.Runs
			}
			return &next, nil
		}),
		machine.WithStatus(Running, func(j *Job, cmd string) (*Job, error) {
			if cmd != "finish" {
				return j, nil
			}
			return &Job{Phase: Idle, Runs: j.Runs + 1}, nil
		}),
	)

	var job *Job
	for _, cmd := range []string{"start", "finish", "start"} {
		job, _ = reduce(job, cmd)
		fmt.Println(job.Phase, job.Runs)
	}

	// Unknown phases are handled by the first registered status.
	job, _ = reduce(&Job{Phase: "PAUSED", Runs: 7}, "start")
	fmt.Println(job.Phase, job.Runs)

	// Output:
	// RUNNING 0
	// IDLE 1
	// RUNNING 1
	// RUNNING 7
}

func ExampleNewBuilder() {
	m, err := machine.NewBuilder[Phase, Job, string](machine.Field(func(j Job) Phase { return j.Phase })).
		On(Idle, func(j Job, cmd string) (Job, error) { return Job{Phase: Running, Runs: j.Runs}, nil }).
		On(Running, func(j Job, cmd string) (Job, error) { return Job{Phase: Idle, Runs: j.Runs + 1}, nil }).
		Strict().
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = m.Reduce(Job{Phase: "PAUSED"}, "start")
	fmt.Println(machine.IsUnknownStatusError(err))
	fmt.Println(err)

	// Output:
	// true
	// machine: no reducer registered for status 'PAUSED'
}
