package exprc

import (
	"strconv"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/pkg/errors"
)

type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

type llvmBuilder struct {
	values *ValueLookup
}

// BuildLLVMModule lowers the expression into a module holding a single
// function @expr. Every variable becomes a double parameter, in the order
// the variables first appear in the source, and the function returns the
// expression's value. This is the one place the pipeline parses literal
// text into numbers.
func BuildLLVMModule(expr Expr) (*ir.Module, error) {
	report := Analyze(expr)

	b := &llvmBuilder{
		values: NewValueLookup(),
	}

	params := make([]*ir.Param, 0, len(report.Variables))
	for _, name := range report.Variables {
		p := ir.NewParam(name, types.Double)
		params = append(params, p)
		b.values.Set(name, p)
	}

	mod := ir.NewModule()
	f := mod.NewFunc("expr", types.Double, params...)
	block := f.NewBlock("")

	v, ins, err := b.recursiveLoad(expr)
	if err != nil {
		return nil, err
	}

	block.Insts = append(block.Insts, ins...)
	block.NewRet(v)

	return mod, nil
}

func (b *llvmBuilder) recursiveLoad(expr Expr) (value.Value, []ir.Instruction, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return b.loadLiteral(e)
	case *BinaryExpr:
		return b.binaryExpression(e)
	case *UnaryExpr:
		return b.unaryExpression(e)
	case *Identifier:
		v, ok := b.values.Get(e.Name)
		if !ok {
			return nil, nil, errors.Errorf("no parameter for identifier '%s'", e.Name)
		}

		return v, nil, nil
	default:
		return nil, nil, errors.Errorf("unexpected node %T", expr)
	}
}

func (b *llvmBuilder) binaryExpression(expr *BinaryExpr) (value.Value, []ir.Instruction, error) {
	v1, i1, err := b.recursiveLoad(expr.Op1)
	if err != nil {
		return nil, nil, err
	}

	v2, i2, err := b.recursiveLoad(expr.Op2)
	if err != nil {
		return nil, nil, err
	}

	ins := append(i1, i2...)

	switch expr.Operation {
	case BinaryAddition:
		op := ir.NewFAdd(v1, v2)
		return op, append(ins, op), nil
	case BinarySubtraction:
		op := ir.NewFSub(v1, v2)
		return op, append(ins, op), nil
	case BinaryMultiplication:
		op := ir.NewFMul(v1, v2)
		return op, append(ins, op), nil
	case BinaryDivision:
		op := ir.NewFDiv(v1, v2)
		return op, append(ins, op), nil
	default:
		return nil, nil, errors.Errorf("unexpected binary op: %s", expr.Operation)
	}
}

func (b *llvmBuilder) unaryExpression(expr *UnaryExpr) (value.Value, []ir.Instruction, error) {
	v, ins, err := b.recursiveLoad(expr.Operand)
	if err != nil {
		return nil, nil, err
	}

	minusOne := constant.NewFloat(types.Double, -1)
	op := ir.NewFMul(v, minusOne)

	return op, append(ins, op), nil
}

func (b *llvmBuilder) loadLiteral(expr *LiteralExpr) (value.Value, []ir.Instruction, error) {
	v, err := strconv.ParseFloat(expr.Value, 64)
	if err != nil {
		// Unreachable for anything the lexer accepts.
		return nil, nil, errors.Wrapf(err, "bad literal '%s'", expr.Value)
	}

	return constant.NewFloat(types.Double, v), nil, nil
}
