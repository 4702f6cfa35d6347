package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/wizard"
)

// errQuit пользователь вышел из формы
var errQuit = errors.New("quit")

// session терминальный диалог поверх wizard.Machine
type session struct {
	in        *bufio.Scanner
	out       io.Writer
	machine   wizard.Machine
	submitter wizard.Submitter
}

// run ведет пользователя по шагам формы до отправки или выхода
func run(ctx context.Context, in io.Reader, out io.Writer, m wizard.Machine, submitter wizard.Submitter) error {
	s := &session{
		in:        bufio.NewScanner(in),
		out:       out,
		machine:   m,
		submitter: submitter,
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch s.machine.Step() {
		case wizard.StepLocations:
			err = s.locations()
		case wizard.StepContact:
			err = s.contact()
		case wizard.StepAddOns:
			err = s.addOns()
		case wizard.StepReview:
			var done bool
			done, err = s.review(ctx)
			if done {
				return nil
			}
		}

		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			s.printf("已離開。\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) printf(format string, v ...interface{}) {
	fmt.Fprintf(s.out, format, v...)
}

func (s *session) header() {
	s.printf("\n== 第 %d 步：%s ==  預計費用 HK$%d\n", int(s.machine.Step()), s.machine.Step(), s.machine.Estimate().Total)
}

// readLine читает строку, io.EOF при закрытом вводе
func (s *session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ask поле с текущим значением: пустой ввод оставляет его, "-" очищает
func (s *session) ask(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}

	line, err := s.readLine(prompt)
	switch {
	case err != nil:
		return "", err
	case line == "":
		return current, nil
	case line == "-":
		return "", nil
	default:
		return line, nil
	}
}

func (s *session) askBool(label string, current bool) (bool, error) {
	line, err := s.ask(label+" (y/n)", domain.YesNo(current))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes", "是":
		return true, nil
	case "n", "no", "否":
		return false, nil
	default:
		return current, nil
	}
}

// advance переход вперед с выводом незаполненных полей
func (s *session) advance() {
	next, err := s.machine.Next()
	var incomplete *wizard.IncompleteError
	if errors.As(err, &incomplete) {
		s.printf("請先填寫：%s\n", strings.Join(incomplete.Fields, ", "))
		return
	}
	s.machine = next
}

func (s *session) back() {
	if prev, err := s.machine.Back(); err == nil {
		s.machine = prev
	}
}

func (s *session) locations() error {
	s.header()
	draft := s.machine.Draft()
	for i, loc := range domain.Locations {
		mark := " "
		if draft.HasLocation(loc.Key) {
			mark = "x"
		}
		s.printf("  %d. [%s] %s (%s)\n", i+1, mark, loc.Name, loc.Description)
	}

	line, err := s.readLine("輸入編號切換地點，n 下一步，q 離開: ")
	if err != nil {
		return err
	}

	switch line {
	case "q":
		return errQuit
	case "n":
		s.advance()
		return nil
	}

	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > len(domain.Locations) {
		s.printf("無效的選項：%q\n", line)
		return nil
	}

	next, err := s.machine.ToggleLocation(domain.Locations[idx-1].Key)
	if err != nil {
		return err
	}
	s.machine = next
	return nil
}

func (s *session) contact() error {
	s.header()
	d := s.machine.Draft()

	var err error
	fields := []struct {
		label string
		value *string
	}{
		{"姓名", &d.Name},
		{"電話", &d.Phone},
		{"車款", &d.CarModel},
		{"車牌 (選填)", &d.CarPlate},
		{"拍攝日期 (YYYY-MM-DD)", &d.BookingDate},
	}
	for _, f := range fields {
		if *f.value, err = s.ask(f.label, *f.value); err != nil {
			return err
		}
	}

	s.machine = s.machine.Edit(func(draft *wizard.Draft) {
		draft.Name = d.Name
		draft.Phone = d.Phone
		draft.CarModel = d.CarModel
		draft.CarPlate = d.CarPlate
		draft.BookingDate = d.BookingDate
	})

	return s.navigate()
}

func (s *session) addOns() error {
	s.header()
	d := s.machine.Draft()

	var err error
	if d.MultipleVehicles, err = s.askBool("多車拍攝", d.MultipleVehicles); err != nil {
		return err
	}
	if d.MultipleVehicles {
		raw, err := s.ask("額外車輛數量", strconv.Itoa(d.ExtraVehicles))
		if err != nil {
			return err
		}
		if n, convErr := strconv.Atoi(raw); convErr == nil && n >= 0 {
			d.ExtraVehicles = n
		}
	}
	if d.VideoUpgrade, err = s.askBool("影片升級", d.VideoUpgrade); err != nil {
		return err
	}
	if d.SpecialRequests, err = s.ask("特別要求 (選填)", d.SpecialRequests); err != nil {
		return err
	}

	s.machine = s.machine.Edit(func(draft *wizard.Draft) {
		draft.MultipleVehicles = d.MultipleVehicles
		draft.ExtraVehicles = d.ExtraVehicles
		draft.VideoUpgrade = d.VideoUpgrade
		draft.SpecialRequests = d.SpecialRequests
	})

	return s.navigate()
}

// navigate n вперед, b назад, q выход; иначе повтор шага
func (s *session) navigate() error {
	line, err := s.readLine("n 下一步，b 上一步，q 離開，Enter 重新填寫: ")
	if err != nil {
		return err
	}
	switch line {
	case "n":
		s.advance()
	case "b":
		s.back()
	case "q":
		return errQuit
	}
	return nil
}

// review вывод заявки и отправка; true после успешной отправки
func (s *session) review(ctx context.Context) (bool, error) {
	s.header()
	sub := s.machine.Submission()
	quote := s.machine.Estimate()

	s.printf("  路線: %s\n", sub.Route)
	s.printf("  姓名: %s  電話: %s\n", sub.Name, sub.Phone)
	s.printf("  車款: %s  車牌: %s\n", sub.CarModel, valueOr(sub.CarPlate, "未提供"))
	s.printf("  日期: %s\n", sub.BookingDate)
	s.printf("  多車拍攝: %s  影片升級: %s\n", domain.YesNo(sub.MultipleVehicles), domain.YesNo(sub.VideoUpgrade))
	s.printf("  特別要求: %s\n", valueOr(sub.SpecialRequests, "無"))
	s.printf("  費用: 基本 HK$%d + 車輛 HK$%d + 影片 HK$%d = HK$%d\n", quote.Base, quote.Vehicles, quote.Video, quote.Total)

	line, err := s.readLine("s 提交，b 上一步，q 離開: ")
	if err != nil {
		return false, err
	}

	switch line {
	case "b":
		s.back()
		return false, nil
	case "q":
		return false, errQuit
	case "s":
	default:
		return false, nil
	}

	next, err := s.machine.Submit(ctx, s.submitter)
	if err != nil {
		s.printf("提交失敗：%v\n可再次提交或返回修改。\n", err)
		return false, nil
	}

	s.machine = next
	s.printf("預約已提交，我們會盡快與您聯絡。\n")
	return true, nil
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
