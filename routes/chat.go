package routes

import (
	"net/http"
	"path/filepath"

	"github.com/EgyRem/advan/models"
	"github.com/EgyRem/advan/storage"
	"github.com/EgyRem/advan/utils"
	"github.com/kataras/iris/v12"
)

// GetChats returns one summary row per chat the user belongs to.
func GetChats(ctx iris.Context) {
	username := ctx.Params().Get("username")
	if username == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "Username required"})
		return
	}
	ctx.JSON(storage.Chats.ChatSummaries(username, avatarFor))
}

// avatarFor resolves a username to its displayable avatar reference,
// falling back to the placeholder for unknown users.
func avatarFor(username string) string {
	user, ok := storage.Users.FindByUsername(username)
	if !ok {
		return "default-avatar.png"
	}
	return user.ProfilePhotoURL()
}

// GetMessages returns the full history between two users, oldest first.
func GetMessages(ctx iris.Context) {
	user1 := ctx.URLParam("user1")
	user2 := ctx.URLParam("user2")
	if user1 == "" || user2 == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "user1 and user2 query parameters required"})
		return
	}
	ctx.JSON(storage.Chats.MessagesBetween(user1, user2))
}

// SendMessage stores a new message, saving the attachment first when one was
// uploaded, and lazily creates the chat record for the pair.
func SendMessage(ctx iris.Context) {
	from := ctx.FormValue("from")
	if from == "" {
		from = ctx.GetHeader("X-Username")
	}
	to := ctx.FormValue("to")
	text := ctx.FormValue("text")

	var attachment *models.Attachment
	file, fh, err := ctx.FormFile("file")
	if err == nil {
		file.Close()
		if !utils.AllowedChatFile(fh) {
			ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "Only images and videos are allowed"})
			return
		}
		if fh.Size > utils.MaxChatFileSize {
			ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "File too large"})
			return
		}
		name := utils.UploadFilename("file", fh.Filename)
		if _, err := ctx.SaveFormFile(fh, filepath.Join(settings.UploadsDir, name)); err != nil {
			ctx.Application().Logger().Errorf("saving chat upload: %v", err)
			utils.CreateInternalServerError(ctx)
			return
		}
		attachment = &models.Attachment{
			FileURL:  "/uploads/" + name,
			FileType: fh.Header.Get("Content-Type"),
		}
	}

	if from == "" || to == "" || (text == "" && attachment == nil) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "from, to, and text or file are required"})
		return
	}

	msg := storage.Chats.AddMessage(from, to, text, attachment)
	storage.Chats.EnsureChat(from, to)

	ctx.JSON(iris.Map{"msg": "Message sent", "message": msg})
}

type markReadInput struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MarkMessagesRead flips the read flag on every unread message sent
// from -> to, that direction only.
func MarkMessagesRead(ctx iris.Context) {
	var input markReadInput
	if err := ctx.ReadJSON(&input); err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "invalid payload"})
		return
	}
	if input.From == "" || input.To == "" {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "from and to are required"})
		return
	}

	if storage.Chats.MarkMessagesRead(input.From, input.To) {
		ctx.JSON(iris.Map{"msg": "Messages marked as read"})
		return
	}
	ctx.JSON(iris.Map{"msg": "No messages updated"})
}
