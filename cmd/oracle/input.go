package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// replHistoryLimit 命令历史上限；占卜命令很短，无需保留更多
// replHistoryLimit caps the command history; oracle commands are short and
// need no deeper recall
const replHistoryLimit = 256

// lineInput 行输入抽象：readline 不可用时退回到无编辑的基础读取
// lineInput abstracts line reading: when readline cannot initialize we fall
// back to plain, editing-free input
type lineInput interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// basicLineInput 基础读取：打印提示符后整行读入，无历史、无编辑
// basicLineInput reads whole lines after printing the prompt; no history,
// no editing
type basicLineInput struct {
	reader *bufio.Reader
	out    io.Writer
}

func newBasicLineInput(in io.Reader, out io.Writer) *basicLineInput {
	return &basicLineInput{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (b *basicLineInput) ReadLine(prompt string) (string, error) {
	if b.out != nil {
		fmt.Fprint(b.out, prompt)
	}
	line, err := b.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (b *basicLineInput) Close() error { return nil }

// readlineInput readline 实现：历史落在数据目录里，跨会话可检索
// readlineInput is the readline implementation; history lives in the data
// directory and survives across sessions
type readlineInput struct {
	instance *readline.Instance
}

func newReadlineInput(historyPath string) (*readlineInput, error) {
	if historyPath != "" {
		if err := os.MkdirAll(filepath.Dir(historyPath), 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	instance, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       historyPath,
		HistoryLimit:      replHistoryLimit,
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &readlineInput{instance: instance}, nil
}

func (r *readlineInput) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(prompt)
	return r.instance.Readline()
}

func (r *readlineInput) Close() error {
	if r == nil || r.instance == nil {
		return nil
	}
	return r.instance.Close()
}

// newLineInput 优先 readline；初始化失败时返回基础读取与原因，
// 调用方据此提示降级
// newLineInput prefers readline; on init failure it returns the basic
// reader plus the cause, so the caller can report the degradation
func newLineInput(historyPath string) (lineInput, error) {
	readlineReader, err := newReadlineInput(historyPath)
	if err == nil {
		return readlineReader, nil
	}
	return newBasicLineInput(os.Stdin, os.Stdout), err
}
