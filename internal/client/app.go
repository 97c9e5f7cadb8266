package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"inpyeon/backend/internal/dto"
)

// App 终端客户端
//
// 仅持有瞬态 UI 状态（登录身份、邮箱缓存、当前页码），进程退出即丢弃，
// 与原始浏览器客户端"整页刷新需重新登录"的行为一致。
// 状态机：匿名 →（login/register/write）→ 已登录 → 邮箱（列表/详情）→ 登出回到匿名。
type App struct {
	api    *API
	reader *bufio.Reader
	out    io.Writer

	// 登录态（内存，不落盘）
	name      string
	traineeID int64

	// 邮箱缓存与分页
	letters []dto.LetterItem
	page    int
}

// NewApp 创建终端客户端
func NewApp(api *API, in io.Reader, out io.Writer) *App {
	return &App{
		api:    api,
		reader: bufio.NewReader(in),
		out:    out,
		page:   1,
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// Run 命令循环。EOF 或 exit 退出。
func (a *App) Run(ctx context.Context) error {
	a.printf("훈련소 인편 서비스\n")
	a.printHelp()

	for {
		if a.api.LoggedIn() {
			a.printf("인편(%s)> ", a.name)
		} else {
			a.printf("인편> ")
		}

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.login(ctx)
		case "register":
			a.register(ctx)
		case "write":
			a.write(ctx)
		case "list":
			a.list(ctx, true)
		case "next":
			a.turnPage(1)
		case "prev":
			a.turnPage(-1)
		case "show":
			a.show(args)
		case "delete":
			a.delete(ctx, args)
		case "logout":
			a.logout(ctx)
		case "exit", "quit":
			a.printf("안녕히 가세요!\n")
			return nil
		default:
			a.printf("알 수 없는 명령입니다: %s\n", cmd)
		}
	}
}

func (a *App) printHelp() {
	if a.api.LoggedIn() {
		a.printf("명령: list, next, prev, show <번호>, delete <번호>, write, logout, exit\n")
	} else {
		a.printf("명령: login, register, write, exit\n")
	}
}

// ── 인증 ──

func (a *App) login(ctx context.Context) {
	userid, err := GetSimpleText(a.reader, "아이디", a.out)
	if err != nil {
		return
	}
	password, err := GetPassword(a.out, "비밀번호")
	if err != nil {
		return
	}

	resp, err := a.api.Login(ctx, userid, password)
	if err != nil {
		a.printf("%s\n", err)
		return
	}

	a.name = resp.Name
	a.traineeID = resp.TraineeID
	a.printf("%s님, 환영합니다!\n", a.name)

	// 로그인 직후 메일함을 불러온다
	a.list(ctx, true)
}

func (a *App) register(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "이름", a.out)
	if err != nil {
		return
	}
	birth, err := GetSimpleText(a.reader, "생년월일 (6자리)", a.out)
	if err != nil {
		return
	}
	enterDate, err := GetSimpleText(a.reader, "입소일자 (예: 2026-08-15)", a.out)
	if err != nil {
		return
	}

	// 아이디 입력 + 중복 확인 (확인은 예약이 아니므로 최종 판정은 가입 시점)
	var userid string
	for {
		userid, err = GetSimpleText(a.reader, "아이디", a.out)
		if err != nil {
			return
		}
		available, message, err := a.api.CheckID(ctx, userid)
		if err != nil {
			a.printf("%s\n", err)
			return
		}
		a.printf("%s\n", message)
		if available {
			break
		}
	}

	password, err := GetPassword(a.out, "비밀번호")
	if err != nil {
		return
	}

	if _, err := a.api.Register(ctx, name, birth, enterDate, userid, password); err != nil {
		a.printf("%s\n", err)
		return
	}
	a.printf("가입이 완료되었습니다. 로그인해주세요.\n")
}

func (a *App) logout(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	if err := a.api.Logout(ctx); err != nil {
		a.printf("%s\n", err)
	}
	a.name = ""
	a.traineeID = 0
	a.setLetters(nil)
	a.printf("로그아웃되었습니다.\n")
}

func (a *App) requireLogin() bool {
	if !a.api.LoggedIn() {
		a.printf("로그인이 필요합니다.\n")
		return false
	}
	return true
}

// ── 편지 쓰기: 조회 → 작성 → 다시 조회 ──

func (a *App) write(ctx context.Context) {
	for {
		a.printf("── 훈련병 조회 ──\n")
		name, err := GetSimpleText(a.reader, "이름", a.out)
		if err != nil {
			return
		}
		birth, err := GetSimpleText(a.reader, "생년월일 (6자리)", a.out)
		if err != nil {
			return
		}
		enterDate, err := GetSimpleText(a.reader, "입소일자", a.out)
		if err != nil {
			return
		}

		trainee, err := a.api.SearchTrainee(ctx, name, birth, enterDate)
		if err != nil {
			a.printf("%s\n", err)
			return
		}
		if trainee == nil {
			a.printf("조회된 훈련병이 없습니다.\n")
			again, _ := GetSimpleText(a.reader, "다시 조회할까요? (y/n)", a.out)
			if again == "y" {
				continue
			}
			return
		}

		a.printf("훈련병: %s (생년월일 %s, 입소일 %s)\n", trainee.Name, trainee.Birth, trainee.EnterDate)
		choice, _ := GetSimpleText(a.reader, "편지를 작성하시겠습니까? (y: 작성 / b: 다시 조회 / q: 종료)", a.out)
		switch choice {
		case "y":
			a.compose(ctx, trainee)
			return
		case "b":
			continue
		default:
			return
		}
	}
}

func (a *App) compose(ctx context.Context, trainee *dto.TraineeInfo) {
	a.printf("── 편지 작성 (받는 사람: %s) ──\n", trainee.Name)
	title, err := GetSimpleText(a.reader, fmt.Sprintf("제목 (최대 %d자)", dto.MaxTitleLen), a.out)
	if err != nil {
		return
	}
	sender, err := GetSimpleText(a.reader, fmt.Sprintf("보내는 사람 (최대 %d자)", dto.MaxSenderLen), a.out)
	if err != nil {
		return
	}
	content, err := GetMultiline(a.reader, fmt.Sprintf("내용 (최대 %d자)", dto.MaxContentLen), a.out)
	if err != nil {
		return
	}

	if err := a.api.SendLetter(ctx, trainee.ID, title, sender, content); err != nil {
		a.printf("%s\n", err)
		return
	}
	a.printf("편지가 성공적으로 전송되었습니다.\n")
}

// ── 메일함 ──

// setLetters 교체 시 목록 길이가 달라지면 1페이지로 복귀
func (a *App) setLetters(letters []dto.LetterItem) {
	if len(letters) != len(a.letters) {
		a.page = 1
	}
	a.letters = letters
	a.page = ClampPage(a.page, len(a.letters))
}

// list 메일함을 서버에서 다시 불러와 현재 페이지를 출력
func (a *App) list(ctx context.Context, refresh bool) {
	if !a.requireLogin() {
		return
	}

	if refresh {
		letters, err := a.api.Letters(ctx, a.traineeID)
		if err != nil {
			a.printf("%s\n", err)
			return
		}
		a.setLetters(letters)
	}

	if len(a.letters) == 0 {
		a.printf("받은 편지가 없습니다.\n")
		return
	}

	a.printf("%-4s %-12s %-24s %s\n", "번호", "발신자", "제목", "보낸 날짜")
	for i, l := range Paginate(a.letters, a.page) {
		a.printf("%-4d %-12s %-24s %s\n", i+1, l.Sender, l.Title, FormatDate(l.CreatedAt))
	}
	a.printf("페이지 %d/%d (next/prev로 이동)\n", a.page, PageCount(len(a.letters)))
}

func (a *App) turnPage(delta int) {
	if !a.requireLogin() {
		return
	}
	a.page = ClampPage(a.page+delta, len(a.letters))
	a.list(context.Background(), false)
}

// pickLetter 현재 페이지의 번호(1부터)로 편지를 고른다
func (a *App) pickLetter(args []string) (*dto.LetterItem, bool) {
	if len(args) != 1 {
		a.printf("번호를 지정하세요. 예: show 1\n")
		return nil, false
	}
	n, err := strconv.Atoi(args[0])
	pageItems := Paginate(a.letters, a.page)
	if err != nil || n < 1 || n > len(pageItems) {
		a.printf("유효하지 않은 번호입니다.\n")
		return nil, false
	}
	return &pageItems[n-1], true
}

func (a *App) show(args []string) {
	if !a.requireLogin() {
		return
	}
	letter, ok := a.pickLetter(args)
	if !ok {
		return
	}

	a.printf("── 편지 상세보기 ──\n")
	a.printf("제목: %s\n", letter.Title)
	a.printf("발신자: %s\n", letter.Sender)
	a.printf("보낸 날짜: %s\n", FormatDate(letter.CreatedAt))
	a.printf("\n%s\n", letter.Content)
}

func (a *App) delete(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	letter, ok := a.pickLetter(args)
	if !ok {
		return
	}

	confirm, _ := GetSimpleText(a.reader, "정말 이 편지를 삭제하시겠습니까? (y/n)", a.out)
	if confirm != "y" {
		return
	}

	if err := a.api.DeleteLetter(ctx, letter.ID); err != nil {
		a.printf("%s\n", err)
		return
	}
	a.printf("편지가 삭제되었습니다.\n")

	// 목록을 다시 불러온다 (길이가 줄면 1페이지로 복귀)
	a.list(ctx, true)
}
