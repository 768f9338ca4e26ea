package host

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/expandr/capability"
	"github.com/specialistvlad/expandr/container"
	"github.com/specialistvlad/expandr/extension"
)

func TestRegistrar_Policy(t *testing.T) {
	id := container.Of[serviceA]()

	t.Run("undefined capability", func(t *testing.T) {
		// Arrange
		e := New(container.NewCollection())

		// Act
		outcome, ok := e.Registrar().TryRegister(id, capability.Type[*customA]())

		// Assert
		assert.False(t, ok)
		assert.Equal(t, extension.Undefined, outcome)
		assert.Zero(t, e.Services().Len())
	})

	t.Run("single capability", func(t *testing.T) {
		// Arrange
		e := New(container.NewCollection())
		require.NoError(t, ExposeTransient[serviceA](e))

		// Act
		first, ok1 := e.Registrar().TryRegister(id, capability.Type[*customA]())
		second, ok2 := e.Registrar().TryRegister(id, capability.Type[*defaultA]())

		// Assert
		assert.True(t, ok1)
		assert.Equal(t, extension.Implemented, first)
		assert.False(t, ok2)
		assert.Equal(t, extension.AlreadyImplemented, second)
		assert.Equal(t, 1, e.Services().Count(id))
	})

	t.Run("multi capability", func(t *testing.T) {
		// Arrange
		e := New(container.NewCollection())
		require.NoError(t, ExposeMultiTransient[serviceA](e))

		// Act
		first, _ := e.Registrar().TryRegister(id, capability.Type[*customA]())
		second, _ := e.Registrar().TryRegister(id, capability.Type[*defaultA]())
		third, _ := e.Registrar().TryRegister(id, capability.Type[*defaultA]())

		// Assert
		assert.Equal(t, extension.Implemented, first)
		assert.Equal(t, extension.Added, second)
		assert.Equal(t, extension.Added, third)
		assert.Equal(t, 3, e.Services().Count(id))
	})

	t.Run("register reports refusal", func(t *testing.T) {
		// Arrange
		e := New(container.NewCollection())
		require.NoError(t, ExposeSingleton[serviceA](e))
		require.NoError(t, e.Registrar().Register(id, capability.Type[*customA]()))

		// Act
		err := e.Registrar().Register(id, capability.Type[*defaultA]())
		undefinedErr := extension.Register[error, *customA](e.Registrar())

		// Assert
		assert.ErrorIs(t, err, extension.ErrCapabilityAlreadySatisfied)
		assert.ErrorIs(t, undefinedErr, extension.ErrUndefinedCapability)
	})

	t.Run("pre-existing host registration counts", func(t *testing.T) {
		// Arrange
		services := container.NewCollection()
		services.AddInstance(id, &customA{})
		e := New(services)
		require.NoError(t, ExposeSingleton[serviceA](e))

		// Act
		outcome, ok := extension.TryRegister[serviceA, *defaultA](e.Registrar())

		// Assert
		assert.False(t, ok)
		assert.Equal(t, extension.AlreadyImplemented, outcome)
	})

	t.Run("lifetime comes from the definition", func(t *testing.T) {
		// Arrange
		e := New(container.NewCollection())
		require.NoError(t, ExposeScoped[serviceA](e))

		// Act
		_, ok := e.Registrar().TryRegister(id, capability.Type[*customA]())

		// Assert
		require.True(t, ok)
		entries := e.Services().Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, container.Scoped, entries[0].Lifetime)
	})

	t.Run("zero descriptor panics", func(t *testing.T) {
		e := New(container.NewCollection())
		require.NoError(t, ExposeTransient[serviceA](e))
		assert.Panics(t, func() { e.Registrar().TryRegister(id, capability.Descriptor{}) })
	})
}

func TestRegistrar_EntriesOnlyExposed(t *testing.T) {
	// Arrange
	services := container.NewCollection()
	services.AddInstance(container.Of[string](), "host only")
	e := New(services)
	require.NoError(t, ExposeMultiSingleton[serviceA](e))
	require.NoError(t, extension.Register[serviceA, *customA](e.Registrar()))

	// Act
	var got []container.Entry
	for entry := range e.Registrar().Entries() {
		got = append(got, entry)
	}

	// Assert
	require.Len(t, got, 1)
	assert.Equal(t, container.Of[serviceA](), got[0].Capability)
	assert.True(t, extension.Implemented[serviceA](e.Registrar()))
	assert.False(t, extension.Implemented[string](e.Registrar()))
}

func TestDefine_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		define  func(e *Engine) error
		wantErr error
	}{
		{
			name: "single with two defaults",
			define: func(e *Engine) error {
				return Expose[serviceA](e, container.Transient, defaultDescriptor, defaultDescriptor)
			},
			wantErr: extension.ErrInvariantViolation,
		},
		{
			name: "zero default",
			define: func(e *Engine) error {
				return ExposeMultiScoped[serviceA](e, capability.Descriptor{})
			},
			wantErr: extension.ErrInvalidDescriptor,
		},
		{
			name: "zero id",
			define: func(e *Engine) error {
				return e.Define(container.ID{}, container.Transient, false)
			},
			wantErr: extension.ErrInvariantViolation,
		},
		{
			name: "multi with two defaults",
			define: func(e *Engine) error {
				return ExposeMulti[serviceA](e, container.Transient, defaultDescriptor, capability.Instance[serviceA](&customA{}))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			e := New(container.NewCollection())

			// Act
			err := tc.define(e)

			// Assert
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, e.Registry().Len())
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	id := container.Of[serviceA]()

	t.Run("does not overwrite a module registration", func(t *testing.T) {
		// Arrange
		e := New(container.NewCollection())
		require.NoError(t, ExposeTransient[serviceA](e, defaultDescriptor))
		require.NoError(t, extension.Register[serviceA, *customA](e.Registrar()))

		// Act
		err := e.ApplyDefaults(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, e.Services().Count(id))
		assert.Equal(t, []string{"custom"}, resolveIDs(e))
	})

	t.Run("fills an unsatisfied capability", func(t *testing.T) {
		// Arrange
		e := New(container.NewCollection())
		require.NoError(t, ExposeTransient[serviceA](e, defaultDescriptor))

		// Act
		err := e.ApplyDefaults(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"default"}, resolveIDs(e))
	})

	t.Run("multi defaults are appended in order", func(t *testing.T) {
		// Arrange
		e := New(container.NewCollection())
		require.NoError(t, ExposeMultiTransient[serviceA](e, capability.Type[*customA](), defaultDescriptor, capability.Type[*customA]()))

		// Act
		err := e.ApplyDefaults(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"custom", "default", "custom"}, resolveIDs(e))
	})

	t.Run("runs once and seals the engine", func(t *testing.T) {
		// Arrange
		e := New(container.NewCollection())
		require.NoError(t, ExposeMultiTransient[serviceA](e, defaultDescriptor))
		require.NoError(t, e.ApplyDefaults(context.Background()))

		// Act
		again := e.ApplyDefaults(context.Background())
		_, loadErr := e.LoadModule(context.Background(), registering("late"), nil)
		_, batchErr := e.LoadModules(context.Background(), nil, nil)

		// Assert
		assert.ErrorIs(t, again, ErrDefaultsApplied)
		assert.ErrorIs(t, loadErr, ErrSealed)
		assert.ErrorIs(t, batchErr, ErrSealed)
		assert.Equal(t, 1, e.Services().Count(id))
	})
}

func TestSetup(t *testing.T) {
	t.Run("registers the engine and applies defaults after configure", func(t *testing.T) {
		// Arrange
		services := container.NewCollection()

		// Act
		e, err := Setup(context.Background(), services, func(ctx context.Context, e *Engine) error {
			if err := ExposeMultiTransient[serviceA](e, defaultDescriptor); err != nil {
				return err
			}
			_, err := e.LoadModules(ctx, []Module{registering("plugin")}, nil)
			return err
		})

		// Assert
		require.NoError(t, err)
		resolved, err := container.Resolve[*Engine](container.Build(services))
		require.NoError(t, err)
		assert.Same(t, e, resolved)
		assert.Equal(t, []string{"custom", "default"}, resolveIDs(e))
	})

	t.Run("configure failure is returned", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Setup(context.Background(), container.NewCollection(), func(context.Context, *Engine) error { return boom })
		assert.ErrorIs(t, err, boom)
	})
}

func TestExposeInstance(t *testing.T) {
	// Arrange
	e := New(container.NewCollection())
	instance := &customA{}
	require.NoError(t, ExposeInstance[serviceA](e, instance))

	// Act
	require.NoError(t, e.ApplyDefaults(context.Background()))
	got, err := container.Resolve[serviceA](container.Build(e.Services()))

	// Assert
	require.NoError(t, err)
	assert.Same(t, instance, got)
}
